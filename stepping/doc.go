// Package stepping implements the stepping-stone pivot of the transportation
// simplex: given a non-basic entering route, find the closed alternating
// cycle it forms with basic routes and shift flow around that cycle.
//
// # Search
//
// A cycle alternates "move along the current row" and "move along the
// current column", uses each row and column by exactly two consecutive
// corners, and returns to the entering cell after at least four corners.
// FindCycle runs two iterative backtracking searches, one leaving the
// entering cell along its row and one along its column. Candidates are
// scanned in ascending index order and the shorter cycle wins (row-first on
// ties).
// When the basis is a spanning tree the cycle is unique, so both searches
// agree up to direction.
//
// # Pivot
//
// Corners are labelled from the entering cell (index 0). Even corners gain,
// odd corners lose. θ is the smallest flow among the losing corners; the
// first losing corner (in cycle order) holding θ leaves the basis. Other
// losing corners that reach zero stay basic, keeping the basis at m+n−1 cells.
//
// # Errors
//
//   - ErrEnteringBasic: the entering route is already basic.
//   - ErrCycleNotFound: no cycle closes (disconnected/degenerate basis). The
//     plan is left untouched; callers treat it as a stalled optimization.
//   - plan.ErrOutOfRange: entering position outside the grid.
//
// Complexity: O(m·n) per search step, worst case exponential backtracking on
// cyclic bases; O(m+n) per search on a spanning-tree basis in practice.
package stepping
