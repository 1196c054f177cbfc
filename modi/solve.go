// SPDX-License-Identifier: MIT

package modi

import (
	"errors"

	"github.com/katalvlaran/transport/initial"
	"github.com/katalvlaran/transport/plan"
	"github.com/katalvlaran/transport/potential"
	"github.com/katalvlaran/transport/stepping"
)

// Solve checks balance, builds the initial plan with Options.Method and
// optimizes it.
func Solve(costs [][]int64, p *plan.Participants, opts ...Option) (Result, error) {
	o := resolve(opts)
	pl, err := initial.Build(o.Method, costs, p)
	if err != nil {
		return Result{}, err
	}

	return Optimize(pl, opts...)
}

// Optimize improves p in place until no non-basic cell has a positive
// delta, the entering cell closes no cycle, or the iteration budget is
// spent.
//
// Steps per iteration:
//  1. Honour Ctx cancellation.
//  2. Repair a disconnected basis (unless disabled).
//  3. Propagate potentials; count forced anchors.
//  4. Select the entering cell; stop when its delta ≤ 0.
//  5. Pivot; a missing cycle stops with StatusStalled.
//  6. Notify OnIteration and clear the potentials.
//
// A single-row or single-column plan is already optimal (its only feasible
// plan) and is returned untouched.
//
// On cancellation or an OnIteration error the partial result is returned
// together with the error; p remains feasible.
func Optimize(p *plan.Plan, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilPlan
	}
	o := resolve(opts)

	res := Result{Plan: p, InitialCost: p.TotalCost(), Status: StatusOptimal}
	if p.Height() == 1 || p.Width() == 1 {
		res.Cost = res.InitialCost
		return res, nil
	}

	u := potential.New(p.Width())
	v := potential.New(p.Height())
	finish := func() Result {
		res.Cost = p.TotalCost()
		res.U, res.V = u.Values(), v.Values()
		return res
	}

	for {
		// 1. Cancellation.
		if err := o.Ctx.Err(); err != nil {
			return finish(), err
		}

		// 2. Basis repair.
		if o.RepairBasis {
			if n := RepairBasis(p); n > 0 {
				res.Repairs += n
				o.Logger.Warnf("modi: degenerate basis, promoted %d cell(s) to zero flow", n)
			}
		}

		// 3. Potentials.
		if f := propagate(p, u, v, o.MaxPasses); f > 0 {
			res.ForcedAnchors += f
			o.Logger.Warnf("modi: potential propagation stalled, forced %d anchor(s) to 0", f)
		}

		// 4. Entering cell.
		enter, delta, ok := SelectEntering(p, u, v)
		if !ok || delta <= 0 {
			if ok {
				res.MaxDelta = delta
			}
			break
		}
		res.MaxDelta = delta
		if o.MaxIterations > 0 && res.Iterations >= o.MaxIterations {
			res.Status = StatusIterationLimit
			o.Logger.Infof("modi: iteration limit %d reached, best delta %d", o.MaxIterations, delta)
			break
		}

		// 5. Pivot.
		mv, err := stepping.Pivot(p, enter)
		if err != nil {
			if errors.Is(err, stepping.ErrCycleNotFound) {
				res.Status = StatusStalled
				res.Entering = enter
				o.Logger.Warnf("modi: no cycle through %s (delta %d), stopping", enter, delta)
				break
			}
			return finish(), err
		}
		res.Iterations++
		cost := p.TotalCost()
		o.Logger.Debugf("modi: iteration %d enter %s delta %d theta %d leave %s cost %d",
			res.Iterations, enter, delta, mv.Theta, mv.Leaving, cost)

		// 6. Observer, then reset potentials for the next round.
		if o.OnIteration != nil {
			it := Iteration{Index: res.Iterations, Entering: enter, Delta: delta, Move: mv, Cost: cost}
			if err := o.OnIteration(it); err != nil {
				return finish(), err
			}
		}
		u.Clear()
		v.Clear()
	}

	return finish(), nil
}
