// SPDX-License-Identifier: MIT

package initial

import (
	"errors"

	"github.com/katalvlaran/transport/plan"
)

// ErrUnknownMethod is returned by Build for an unsupported Method.
var ErrUnknownMethod = errors.New("initial: unknown method")

// Method names an initial-plan construction rule.
type Method string

const (
	// MethodLeastCost selects LeastCost.
	MethodLeastCost Method = "least-cost"

	// MethodNorthWest selects NorthWest.
	MethodNorthWest Method = "north-west"
)

// Build dispatches to the builder named by m.
func Build(m Method, costs [][]int64, p *plan.Participants) (*plan.Plan, error) {
	switch m {
	case MethodLeastCost:
		return LeastCost(costs, p)
	case MethodNorthWest:
		return NorthWest(costs, p)
	default:
		return nil, ErrUnknownMethod
	}
}

// prepare validates balance and shape and returns an empty plan plus the
// scratch ledger the builder will consume.
func prepare(costs [][]int64, p *plan.Participants) (*plan.Plan, *plan.Ledger, error) {
	if p == nil {
		return nil, nil, plan.ErrNoSuppliers
	}
	if err := p.CheckBalance(); err != nil {
		return nil, nil, err
	}
	pl, err := plan.New(costs, p)
	if err != nil {
		return nil, nil, err
	}

	return pl, p.Ledger(), nil
}

// dropZeroFlows turns every zero-flow basic cell into a non-basic one.
func dropZeroFlows(pl *plan.Plan) {
	cells := pl.Cells()
	for k := range cells {
		if cells[k].Flow.Quantity() == 0 {
			cells[k].Flow = plan.NonBasic()
		}
	}
}
