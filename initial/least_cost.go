// SPDX-License-Identifier: MIT

package initial

import (
	"sort"

	"github.com/katalvlaran/transport/plan"
)

// LeastCost builds an initial basic plan with the minimum-element rule.
//
// Steps:
//  1. Validate balance and shape; allocate an all-non-basic plan and a Ledger.
//  2. Order every route by ascending cost. A stable sort over row-major
//     offsets reproduces "select the global minimum, first encountered on
//     ties, then remove it" without rescanning the candidate set.
//  3. For each route, ship min(remaining supply, remaining demand). When
//     demand is strictly smaller the consumer is exhausted, otherwise the
//     supplier is. The route leaves the candidate set either way.
//  4. Mark every route whose flow ended at zero as non-basic.
//
// Complexity: O(m·n·log(m·n)) time, O(m·n) extra space.
func LeastCost(costs [][]int64, p *plan.Participants) (*plan.Plan, error) {
	pl, ledger, err := prepare(costs, p)
	if err != nil {
		return nil, err
	}

	cells := pl.Cells()
	order := make([]int, len(cells))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cells[order[a]].Cost < cells[order[b]].Cost
	})

	for _, k := range order {
		c := &cells[k]
		i, j := c.Pos.Row, c.Pos.Col
		if ledger.RemainingSupply(i) > 0 && ledger.RemainingDemand(j) > 0 {
			c.Flow = plan.Basic(ledger.Allocate(i, j))
		}
	}

	dropZeroFlows(pl)

	return pl, nil
}
