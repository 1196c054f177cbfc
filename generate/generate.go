// SPDX-License-Identifier: MIT

package generate

import (
	"errors"

	"github.com/katalvlaran/transport/plan"
)

// ErrBadParams is returned when Balanced receives a non-positive shape or
// quantity bound, or a negative cost bound.
var ErrBadParams = errors.New("generate: invalid instance parameters")

// Instance is a balanced transportation problem.
type Instance struct {
	Costs  [][]int64
	Supply []int64
	Demand []int64
}

// Participants snapshots the instance's supply and demand.
func (in *Instance) Participants() (*plan.Participants, error) {
	return plan.NewParticipants(in.Supply, in.Demand)
}

// Sample returns the 4 suppliers × 5 consumers reference instance.
// Its optimal cost is 335.
func Sample() *Instance {
	return &Instance{
		Costs: [][]int64{
			{5, 15, 3, 6, 10},
			{23, 8, 13, 27, 12},
			{30, 1, 5, 24, 25},
			{8, 26, 7, 28, 9},
		},
		Supply: []int64{9, 11, 14, 16},
		Demand: []int64{8, 10, 12, 8, 12},
	}
}

// Balanced returns a deterministic random balanced instance with m
// suppliers and n consumers. Costs are uniform in [0, maxCost], supplies
// uniform in [1, maxQty], and the total supply is split into n random
// demands (some may be zero).
//
// Complexity: O(m·n) time and space.
func Balanced(m, n int, maxCost, maxQty, seed int64) (*Instance, error) {
	if m < 1 || n < 1 || maxCost < 0 || maxQty < 1 {
		return nil, ErrBadParams
	}
	r := rngFromSeed(seed)

	in := &Instance{
		Costs:  make([][]int64, m),
		Supply: make([]int64, m),
	}
	var total int64
	for i := 0; i < m; i++ {
		in.Costs[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			in.Costs[i][j] = r.Int63n(maxCost + 1)
		}
		in.Supply[i] = 1 + r.Int63n(maxQty)
		total += in.Supply[i]
	}
	in.Demand = splitTotal(total, n, r)

	return in, nil
}
