// Package initial builds a first feasible basic plan for a balanced
// transportation problem.
//
// Two builders are offered:
//
//   - LeastCost — repeatedly picks the globally cheapest remaining route
//     (first in row-major order on ties) and ships as much as its supplier
//     and consumer still allow. Usually a close starting point for MODI.
//
//   - Method: stable sort of all routes by cost, one greedy sweep.
//
//   - Time:   O(m·n·log(m·n)).
//
//   - Memory: O(m·n) for the candidate order.
//
//   - NorthWest — sweeps rows top to bottom, columns left to right,
//     ignoring cost entirely.
//
//   - Time:   O(m·n).
//
// Both builders validate balance first (plan.ErrImbalance), consume a private
// plan.Ledger, and return a Plan that references the ORIGINAL participants.
// Routes that end with zero flow are marked non-basic, so the resulting basis
// may be degenerate (fewer than m+n−1 basic cells); modi repairs that.
package initial
