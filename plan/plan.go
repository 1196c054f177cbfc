// SPDX-License-Identifier: MIT

package plan

import (
	"fmt"
	"strings"
)

// Plan is a Height()×Width() grid of route cells plus the original
// Participants used for reporting and auditing.
type Plan struct {
	height, width int
	cells         []Cell // row-major, offset = i*width + j
	participants  *Participants
}

// New builds a plan over costs with every cell non-basic.
// costs must have one row per supplier and one column per consumer, all
// entries non-negative. The Participants are referenced, not copied; they
// are immutable.
func New(costs [][]int64, p *Participants) (*Plan, error) {
	if p == nil {
		return nil, ErrNoSuppliers
	}
	h, w := p.SupplierCount(), p.ConsumerCount()
	if len(costs) != h {
		return nil, fmt.Errorf("%d rows for %d suppliers: %w", len(costs), h, ErrBadShape)
	}

	pl := &Plan{
		height:       h,
		width:        w,
		cells:        make([]Cell, h*w),
		participants: p,
	}
	for i, row := range costs {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns for %d consumers: %w", i, len(row), w, ErrNonRectangular)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("cost %d at %v: %w", c, Position{i, j}, ErrNegativeCost)
			}
			pl.cells[i*w+j] = Cell{Pos: Position{Row: i, Col: j}, Cost: c, Flow: NonBasic()}
		}
	}

	return pl, nil
}

// Height returns the supplier count.
func (p *Plan) Height() int { return p.height }

// Width returns the consumer count.
func (p *Plan) Width() int { return p.width }

// Participants returns the original (undecremented) participants.
func (p *Plan) Participants() *Participants { return p.participants }

// InBounds reports whether (i, j) addresses a cell.
func (p *Plan) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < p.height && j < p.width
}

// Cell returns the cell at (i, j). Out-of-range access is a caller contract
// violation and panics with ErrOutOfRange; use At for a checked lookup.
func (p *Plan) Cell(i, j int) *Cell {
	if !p.InBounds(i, j) {
		panic(fmt.Errorf("%v in %dx%d plan: %w", Position{i, j}, p.height, p.width, ErrOutOfRange))
	}

	return &p.cells[i*p.width+j]
}

// At is the checked variant of Cell.
func (p *Plan) At(i, j int) (*Cell, error) {
	if !p.InBounds(i, j) {
		return nil, fmt.Errorf("%v in %dx%d plan: %w", Position{i, j}, p.height, p.width, ErrOutOfRange)
	}

	return &p.cells[i*p.width+j], nil
}

// SetFlow replaces the flow at (i, j). Panics on out-of-range positions.
func (p *Plan) SetFlow(i, j int, f Flow) {
	p.Cell(i, j).Flow = f
}

// Cells returns the backing cells in row-major order. Mutations through the
// returned slice are visible in the plan.
func (p *Plan) Cells() []Cell { return p.cells }

// TotalCost returns Σ cost×flow over basic cells.
func (p *Plan) TotalCost() int64 {
	var sum int64
	for k := range p.cells {
		c := &p.cells[k]
		if c.Flow.IsBasic() {
			sum += c.Cost * c.Flow.Quantity()
		}
	}

	return sum
}

// RowFlow returns the total flow shipped by supplier i.
func (p *Plan) RowFlow(i int) int64 {
	var sum int64
	for j := 0; j < p.width; j++ {
		sum += p.Cell(i, j).Flow.Quantity()
	}

	return sum
}

// ColFlow returns the total flow received by consumer j.
func (p *Plan) ColFlow(j int) int64 {
	var sum int64
	for i := 0; i < p.height; i++ {
		sum += p.Cell(i, j).Flow.Quantity()
	}

	return sum
}

// TotalFlow returns the sum of all basic flows.
func (p *Plan) TotalFlow() int64 {
	var sum int64
	for k := range p.cells {
		sum += p.cells[k].Flow.Quantity()
	}

	return sum
}

// BasicCount returns the number of basic cells.
func (p *Plan) BasicCount() int {
	n := 0
	for k := range p.cells {
		if p.cells[k].Flow.IsBasic() {
			n++
		}
	}

	return n
}

// IsDegenerate reports whether the basis is smaller than a spanning tree
// over suppliers and consumers (Height()+Width()−1 cells).
func (p *Plan) IsDegenerate() bool {
	return p.BasicCount() < p.height+p.width-1
}

// CheckConservation verifies every row sums to its original supply and every
// column to its original demand.
func (p *Plan) CheckConservation() error {
	for i := 0; i < p.height; i++ {
		if got, want := p.RowFlow(i), p.participants.Supply(i); got != want {
			return fmt.Errorf("row %d ships %d, supply %d: %w", i, got, want, ErrConservation)
		}
	}
	for j := 0; j < p.width; j++ {
		if got, want := p.ColFlow(j), p.participants.Demand(j); got != want {
			return fmt.Errorf("column %d receives %d, demand %d: %w", j, got, want, ErrConservation)
		}
	}

	return nil
}

// Flows returns the allocation matrix; non-basic cells read as zero.
func (p *Plan) Flows() [][]int64 {
	out := make([][]int64, p.height)
	for i := range out {
		out[i] = make([]int64, p.width)
		for j := range out[i] {
			out[i][j] = p.cells[i*p.width+j].Flow.Quantity()
		}
	}

	return out
}

// Costs returns a copy of the unit cost matrix.
func (p *Plan) Costs() [][]int64 {
	out := make([][]int64, p.height)
	for i := range out {
		out[i] = make([]int64, p.width)
		for j := range out[i] {
			out[i][j] = p.cells[i*p.width+j].Cost
		}
	}

	return out
}

// ClearDeltas zeroes the per-iteration Delta scratch values.
func (p *Plan) ClearDeltas() {
	for k := range p.cells {
		p.cells[k].Delta = 0
	}
}

// Clone returns a deep copy of the grid sharing the immutable Participants.
func (p *Plan) Clone() *Plan {
	cells := make([]Cell, len(p.cells))
	copy(cells, p.cells)

	return &Plan{
		height:       p.height,
		width:        p.width,
		cells:        cells,
		participants: p.participants,
	}
}

// String renders the flows as rows of "flow@cost" entries, "-" marking
// non-basic routes.
func (p *Plan) String() string {
	var sb strings.Builder
	for i := 0; i < p.height; i++ {
		sb.WriteString("[")
		for j := 0; j < p.width; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			c := &p.cells[i*p.width+j]
			fmt.Fprintf(&sb, "%s@%d", c.Flow, c.Cost)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
