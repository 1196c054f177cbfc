// Package transport solves the balanced transportation problem: ship goods
// from suppliers with fixed supply to consumers with fixed demand so that
// every quantity is met exactly and the total route cost is minimal.
//
// What is in the module?
//
//	• Data model: participants, mutable allocation ledger, plan grid of routes
//	• Initial plans: least cost (minimum element) and north-west corner
//	• Optimization: MODI potentials + stepping-stone pivots, degenerate-basis repair
//	• Verification: LP cross-check through gonum's simplex
//	• Tooling: JSON problem files, random instances, table reports, CLI
//
// Packages:
//
//	plan/      — Participants, Ledger, Position, Flow, Cell, Plan
//	potential/ — fixed-length arrays of optional potentials
//	initial/   — LeastCost, NorthWest, Build
//	stepping/  — cycle search and pivot
//	modi/      — potentials, entering-cell selection, Optimize, Solve
//	lpcheck/   — MinCost, Certify
//	generate/  — Sample, Balanced
//	problem/   — JSON Load/Decode
//	report/    — table rendering
//	log/       — zap-backed logging facade
//	cmd/tsolver — command-line solver
//
// Quick example (4 suppliers × 5 consumers, see generate.Sample):
//
//	in := generate.Sample()
//	p, _ := in.Participants()
//	res, err := modi.Solve(in.Costs, p)
//	// res.InitialCost == 449, res.Cost == 335, res.Status == modi.StatusOptimal
//
// Only the minimal cost is guaranteed; among several optimal plans the one
// reached depends on the deterministic tie-breaking rules (row-major order
// everywhere).
package transport
