// SPDX-License-Identifier: MIT

package plan

import "fmt"

// Position identifies a route: Row is the supplier index, Col the consumer index.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Flow is the tagged state of a route: either basic with a non-negative
// quantity, or non-basic. A basic route may legitimately carry zero.
type Flow struct {
	qty   int64
	basic bool
}

// Basic returns a basic flow of q units. A negative q is a programmer error.
func Basic(q int64) Flow {
	if q < 0 {
		panic(fmt.Sprintf("plan: negative basic flow %d", q))
	}

	return Flow{qty: q, basic: true}
}

// NonBasic returns the non-basic marker.
func NonBasic() Flow { return Flow{} }

// IsBasic reports whether the route is part of the basis.
func (f Flow) IsBasic() bool { return f.basic }

// Quantity returns the shipped units; zero for non-basic routes.
func (f Flow) Quantity() int64 {
	if !f.basic {
		return 0
	}

	return f.qty
}

// String renders "-" for non-basic flows and the quantity otherwise.
func (f Flow) String() string {
	if !f.basic {
		return "-"
	}

	return fmt.Sprintf("%d", f.qty)
}

// Cell is one route of the plan.
type Cell struct {
	Pos  Position // supplier/consumer indices
	Cost int64    // unit tariff, immutable after construction
	Flow Flow     // basic quantity or non-basic marker

	// Delta is the improvement value U[col]+V[row]−Cost computed during the
	// optimality scan of a single iteration. Meaningless outside that scan.
	Delta int64
}
