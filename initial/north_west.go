// SPDX-License-Identifier: MIT

package initial

import "github.com/katalvlaran/transport/plan"

// NorthWest builds an initial basic plan with the north-west corner rule:
// rows top to bottom, columns left to right, skipping satisfied consumers and
// moving to the next row as soon as the current supplier is exhausted.
//
// Complexity: O(m·n) time, O(m+n) extra space.
func NorthWest(costs [][]int64, p *plan.Participants) (*plan.Plan, error) {
	pl, ledger, err := prepare(costs, p)
	if err != nil {
		return nil, err
	}

	for i := 0; i < pl.Height(); i++ {
		for j := 0; j < pl.Width(); j++ {
			if ledger.RemainingDemand(j) == 0 {
				continue
			}
			pl.SetFlow(i, j, plan.Basic(ledger.Allocate(i, j)))
			if ledger.RemainingSupply(i) == 0 {
				break
			}
		}
	}

	dropZeroFlows(pl)

	return pl, nil
}
