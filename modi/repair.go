// SPDX-License-Identifier: MIT

package modi

import (
	"sort"

	"github.com/katalvlaran/transport/plan"
)

// dsu is a disjoint-set forest over the m+n basis-graph nodes: supplier i is
// node i, consumer j is node m+j.
type dsu struct {
	parent []int
	rank   []int
	sets   int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n), sets: n}
	for v := range d.parent {
		d.parent[v] = v
	}

	return d
}

// find walks to the root with path halving.
func (d *dsu) find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// union merges the sets of a and b by rank and reports whether they were
// disjoint.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.sets--

	return true
}

// RepairBasis connects the basis graph of p. While more than one component
// remains, the cheapest non-basic cell joining two components (row-major
// order on equal cost) is promoted to Basic(0). It returns the number of
// promoted cells; a connected basis yields 0 and p is not touched.
//
// Steps:
//  1. Union every basic cell's supplier and consumer nodes.
//  2. If one component remains, stop.
//  3. Stable-sort the non-basic cells by cost.
//  4. Kruskal: promote each cell whose endpoints are disjoint until connected.
//
// Complexity: O(m·n·log(m·n)) when repair is needed, O(m·n·α) otherwise.
func RepairBasis(p *plan.Plan) int {
	m := p.Height()
	d := newDSU(m + p.Width())

	// 1. Existing basis edges.
	cells := p.Cells()
	for k := range cells {
		if cells[k].Flow.IsBasic() {
			d.union(cells[k].Pos.Row, m+cells[k].Pos.Col)
		}
	}
	// 2. Already a single tree (or forest of one).
	if d.sets == 1 {
		return 0
	}

	// 3. Candidates, cheapest first; Cells() is row-major so ties stay ordered.
	candidates := make([]int, 0, len(cells))
	for k := range cells {
		if !cells[k].Flow.IsBasic() {
			candidates = append(candidates, k)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return cells[candidates[a]].Cost < cells[candidates[b]].Cost
	})

	// 4. Join components.
	added := 0
	for _, k := range candidates {
		pos := cells[k].Pos
		if d.union(pos.Row, m+pos.Col) {
			p.SetFlow(pos.Row, pos.Col, plan.Basic(0))
			added++
			if d.sets == 1 {
				break
			}
		}
	}

	return added
}
