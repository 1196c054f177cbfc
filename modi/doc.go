// Package modi drives the transportation simplex to optimality using the
// modified-distribution (MODI) method.
//
// What:
//
//   - ComputePotentials derives one potential per consumer (U) and one per
//     supplier (V) from the basic cells, seeding U[0]=0 and solving
//     cost(i,j) = U[j] + V[i] across repeated passes.
//   - SelectEntering evaluates delta = U[j] + V[i] − cost on every non-basic
//     cell and returns the first maximum in row-major order.
//   - Optimize loops potentials → selection → stepping.Pivot until no
//     non-basic cell has a positive delta.
//   - Solve builds the initial plan (least cost by default) and optimizes it.
//
// Degenerate bases:
//
// A basis with fewer than m+n−1 cells leaves the basis graph (suppliers and
// consumers as nodes, basic cells as edges) disconnected. Before every
// potential pass Optimize joins the components with the cheapest non-basic
// cells promoted to Basic(0), Kruskal-style; WithoutBasisRepair disables
// this. Propagation that still stalls forces the first unknown potential to
// zero and counts it in Result.ForcedAnchors.
//
// Termination:
//
//   - StatusOptimal: max delta ≤ 0 (or a single-row/column plan).
//   - StatusStalled: the entering cell closes no cycle; the plan is a
//     feasible best effort, not certified optimal.
//   - StatusIterationLimit: WithMaxIterations budget spent.
//
// Complexity: O(m·n) per potential pass; O((m+n)·m·n) per iteration in the
// worst case.
package modi
