// Package plan holds the data model of a balanced transportation problem:
// the Participants snapshot (suppliers with supply, consumers with demand),
// the mutable Ledger scratch buffer used while building an initial plan, and
// the Plan itself, a height×width grid of route cells.
//
// What:
//
//   - Participants is immutable once built and always reports the ORIGINAL
//     supply and demand. Builders decrement a private Ledger instead.
//   - Every Cell carries an immutable unit cost and a tagged Flow:
//     Basic(q) for routes in the current basis (q may be zero under
//     degeneracy) or NonBasic() for routes outside it.
//   - Plan exposes per-cell {row, column, cost, flow} plus aggregate views
//     (TotalCost, RowFlow, ColFlow, BasicCount, CheckConservation).
//
// Invariants (maintained by the initial builders and the pivot):
//
//   - Σ basic flows in row i == Supply(i); Σ basic flows in column j == Demand(j).
//   - A non-degenerate basis has exactly Height()+Width()−1 basic cells.
//
// Errors:
//
//   - ErrNoSuppliers / ErrNoConsumers: empty participant sides.
//   - ErrNegativeQuantity, ErrNegativeCost: negative inputs.
//   - ErrImbalance: Σsupply ≠ Σdemand (returned by CheckBalance).
//   - ErrBadShape / ErrNonRectangular: cost matrix does not match participants.
//   - ErrOutOfRange: At() with an invalid position; Cell() panics instead.
//   - ErrConservation: CheckConservation found a violated row/column sum.
//
// Complexity: construction O(m·n); Cell/At O(1); aggregates O(m·n).
package plan
