// SPDX-License-Identifier: MIT

package stepping

import "github.com/katalvlaran/transport/plan"

// Pivot finds the cycle of enter and reallocates flow along it.
//
// Steps:
//  1. FindCycle; on error the plan is not modified.
//  2. θ = min flow over odd (losing) corners; the first corner holding the
//     minimum, in cycle order, is the leaving route.
//  3. Entering flow becomes Basic(0), then every even corner gains θ and
//     every odd corner loses θ.
//  4. Only the leaving route turns non-basic.
//
// Row and column sums are unchanged because every row and every column of
// the cycle holds exactly one gaining and one losing corner.
func Pivot(p *plan.Plan, enter plan.Position) (Move, error) {
	cyc, err := FindCycle(p, enter)
	if err != nil {
		return Move{}, err
	}

	leave := 1
	for k := 3; k < cyc.Len(); k += 2 {
		if qty(p, cyc.Corners[k]) < qty(p, cyc.Corners[leave]) {
			leave = k
		}
	}
	theta := qty(p, cyc.Corners[leave])

	p.SetFlow(enter.Row, enter.Col, plan.Basic(0))
	for k, pos := range cyc.Corners {
		q := qty(p, pos)
		if cyc.Gains(k) {
			p.SetFlow(pos.Row, pos.Col, plan.Basic(q+theta))
		} else {
			p.SetFlow(pos.Row, pos.Col, plan.Basic(q-theta))
		}
	}
	leaving := cyc.Corners[leave]
	p.SetFlow(leaving.Row, leaving.Col, plan.NonBasic())

	return Move{Cycle: cyc, Theta: theta, Leaving: leaving}, nil
}

func qty(p *plan.Plan, pos plan.Position) int64 {
	return p.Cell(pos.Row, pos.Col).Flow.Quantity()
}
