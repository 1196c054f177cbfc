// SPDX-License-Identifier: MIT

package modi

import (
	"github.com/katalvlaran/transport/plan"
	"github.com/katalvlaran/transport/potential"
)

// ComputePotentials derives U (per consumer) and V (per supplier) from the
// basic cells of p so that cost(i,j) = U[j] + V[i] on every basic cell
// reachable from an anchor. U[0] is seeded with 0.
//
// A pass scans basic cells row-major and fills any potential whose partner
// is already known. When a pass derives nothing new, or maxPasses passes go
// by without completing, the first unknown slot (U first, then V) is forced
// to 0. forced counts those anchors; it is 0 for a connected basis.
//
// Complexity: O(k·m·n) where k ≤ m+n is the number of productive passes.
func ComputePotentials(p *plan.Plan, maxPasses int) (u, v *potential.Array, forced int) {
	u = potential.New(p.Width())
	v = potential.New(p.Height())
	forced = propagate(p, u, v, maxPasses)

	return u, v, forced
}

// propagate fills the cleared arrays u and v; see ComputePotentials.
func propagate(p *plan.Plan, u, v *potential.Array, maxPasses int) int {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	u.Set(0, 0)

	forced, passes := 0, 0
	cells := p.Cells()
	for !u.Complete() || !v.Complete() {
		progress := false
		for k := range cells {
			c := &cells[k]
			if !c.Flow.IsBasic() {
				continue
			}
			uj, uKnown := u.Get(c.Pos.Col)
			vi, vKnown := v.Get(c.Pos.Row)
			switch {
			case uKnown && !vKnown:
				v.Set(c.Pos.Row, c.Cost-uj)
				progress = true
			case vKnown && !uKnown:
				u.Set(c.Pos.Col, c.Cost-vi)
				progress = true
			}
		}
		passes++

		if u.Complete() && v.Complete() {
			break
		}
		if !progress || passes >= maxPasses {
			if j := u.FirstUnknown(); j >= 0 {
				u.Set(j, 0)
			} else {
				v.Set(v.FirstUnknown(), 0)
			}
			forced++
			passes = 0
		}
	}

	return forced
}

// SelectEntering stores delta = U[j] + V[i] − cost in every non-basic cell
// and returns the first cell (row-major) holding the maximum. ok is false
// when p has no non-basic cell. Basic cells get Delta 0.
//
// Complexity: O(m·n).
func SelectEntering(p *plan.Plan, u, v *potential.Array) (pos plan.Position, delta int64, ok bool) {
	cells := p.Cells()
	for k := range cells {
		c := &cells[k]
		if c.Flow.IsBasic() {
			c.Delta = 0
			continue
		}
		c.Delta = u.MustGet(c.Pos.Col) + v.MustGet(c.Pos.Row) - c.Cost
		if !ok || c.Delta > delta {
			pos, delta, ok = c.Pos, c.Delta, true
		}
	}

	return pos, delta, ok
}
