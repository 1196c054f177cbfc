package modi_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/transport/generate"
	"github.com/katalvlaran/transport/initial"
	"github.com/katalvlaran/transport/log"
	"github.com/katalvlaran/transport/modi"
	"github.com/katalvlaran/transport/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nb = -1

func build(t *testing.T, costs, flows [][]int64) *plan.Plan {
	t.Helper()
	supply := make([]int64, len(flows))
	demand := make([]int64, len(flows[0]))
	for i, row := range flows {
		for j, q := range row {
			if q > 0 {
				supply[i] += q
				demand[j] += q
			}
		}
	}
	p, err := plan.NewParticipants(supply, demand)
	require.NoError(t, err)
	pl, err := plan.New(costs, p)
	require.NoError(t, err)
	for i, row := range flows {
		for j, q := range row {
			if q != nb {
				pl.SetFlow(i, j, plan.Basic(q))
			}
		}
	}

	return pl
}

func sample(t *testing.T) ([][]int64, *plan.Participants) {
	t.Helper()
	in := generate.Sample()
	p, err := in.Participants()
	require.NoError(t, err)

	return in.Costs, p
}

// assertDual checks the optimality certificate: U[j]+V[i] equals the cost on
// basic cells and never exceeds it elsewhere.
func assertDual(t *testing.T, res modi.Result) {
	t.Helper()
	for _, c := range res.Plan.Cells() {
		sum := res.U[c.Pos.Col] + res.V[c.Pos.Row]
		if c.Flow.IsBasic() {
			assert.Equal(t, c.Cost, sum, "basic %s", c.Pos)
		} else {
			assert.LessOrEqual(t, sum, c.Cost, "non-basic %s", c.Pos)
		}
	}
}

var sampleOptimum = [][]int64{
	{0, 0, 1, 8, 0},
	{0, 0, 0, 0, 11},
	{0, 10, 4, 0, 0},
	{8, 0, 7, 0, 1},
}

func TestSolve_Sample(t *testing.T) {
	costs, p := sample(t)
	cases := []struct {
		method      initial.Method
		initialCost int64
		iterations  int
	}{
		{initial.MethodLeastCost, 449, 2},
		{initial.MethodNorthWest, 519, 6},
	}
	for _, tc := range cases {
		t.Run(string(tc.method), func(t *testing.T) {
			res, err := modi.Solve(costs, p, modi.WithMethod(tc.method), modi.WithLogger(log.Nop()))
			require.NoError(t, err)
			assert.Equal(t, modi.StatusOptimal, res.Status)
			assert.True(t, res.Optimal())
			assert.Equal(t, tc.initialCost, res.InitialCost)
			assert.Equal(t, int64(335), res.Cost)
			assert.Equal(t, tc.iterations, res.Iterations)
			assert.Zero(t, res.Repairs)
			assert.Zero(t, res.ForcedAnchors)
			assert.LessOrEqual(t, res.MaxDelta, int64(0))
			assert.Equal(t, sampleOptimum, res.Plan.Flows())
			assert.Equal(t, []int64{0, -5, -1, 2, 1}, res.U)
			assert.Equal(t, []int64{4, 11, 6, 8}, res.V)
			assert.NoError(t, res.Plan.CheckConservation())
			assertDual(t, res)
		})
	}
}

// TestOptimize_Trace records every pivot of the least-cost run.
func TestOptimize_Trace(t *testing.T) {
	costs, p := sample(t)
	pl, err := initial.LeastCost(costs, p)
	require.NoError(t, err)

	var trace []modi.Iteration
	res, err := modi.Optimize(pl, modi.WithLogger(log.Nop()), modi.WithOnIteration(func(it modi.Iteration) error {
		trace = append(trace, it)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, trace, 2)

	assert.Equal(t, 1, trace[0].Index)
	assert.Equal(t, plan.Position{Row: 0, Col: 3}, trace[0].Entering)
	assert.Equal(t, int64(16), trace[0].Delta)
	assert.Equal(t, int64(1), trace[0].Move.Theta)
	assert.Equal(t, plan.Position{Row: 2, Col: 3}, trace[0].Move.Leaving)
	assert.Equal(t, int64(433), trace[0].Cost)

	assert.Equal(t, plan.Position{Row: 3, Col: 2}, trace[1].Entering)
	assert.Equal(t, int64(14), trace[1].Delta)
	assert.Equal(t, int64(7), trace[1].Move.Theta)
	assert.Equal(t, 6, trace[1].Move.Cycle.Len())
	assert.Equal(t, int64(335), trace[1].Cost)
	assert.Equal(t, res.Cost, trace[1].Cost)
}

func TestOptimize_Idempotent(t *testing.T) {
	costs, p := sample(t)
	res, err := modi.Solve(costs, p, modi.WithLogger(log.Nop()))
	require.NoError(t, err)

	before := res.Plan.Flows()
	again, err := modi.Optimize(res.Plan, modi.WithLogger(log.Nop()))
	require.NoError(t, err)
	assert.Zero(t, again.Iterations)
	assert.Equal(t, res.Cost, again.Cost)
	assert.Equal(t, before, again.Plan.Flows())
}

func TestOptimize_SingleLine(t *testing.T) {
	row := build(t, [][]int64{{4, 1, 7}}, [][]int64{{2, 3, 5}})
	col := build(t, [][]int64{{4}, {1}}, [][]int64{{6}, {2}})
	for name, pl := range map[string]*plan.Plan{"row": row, "column": col} {
		t.Run(name, func(t *testing.T) {
			before := pl.String()
			res, err := modi.Optimize(pl, modi.WithLogger(log.Nop()))
			require.NoError(t, err)
			assert.Equal(t, modi.StatusOptimal, res.Status)
			assert.Zero(t, res.Iterations)
			assert.Equal(t, res.InitialCost, res.Cost)
			assert.Nil(t, res.U)
			assert.Nil(t, res.V)
			assert.Equal(t, before, pl.String())
		})
	}
}

// TestSolve_DegenerateRepaired: least cost leaves two basic cells in a 2×2,
// repair promotes (0,1) and the plan is already optimal.
func TestSolve_DegenerateRepaired(t *testing.T) {
	p, err := plan.NewParticipants([]int64{5, 5}, []int64{5, 5})
	require.NoError(t, err)
	res, err := modi.Solve([][]int64{{1, 2}, {2, 1}}, p, modi.WithLogger(log.Nop()))
	require.NoError(t, err)

	assert.Equal(t, modi.StatusOptimal, res.Status)
	assert.Equal(t, int64(10), res.Cost)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, 1, res.Repairs)
	assert.Zero(t, res.ForcedAnchors)
	assert.Equal(t, "[5@1, 0@2]\n[-@2, 5@1]\n", res.Plan.String())
	assertDual(t, res)
}

func TestOptimize_RepairThenPivot(t *testing.T) {
	pl := build(t, [][]int64{{1, 1}, {1, 9}}, [][]int64{{5, nb}, {nb, 5}})
	res, err := modi.Optimize(pl, modi.WithLogger(log.Nop()))
	require.NoError(t, err)

	assert.Equal(t, modi.StatusOptimal, res.Status)
	assert.Equal(t, 1, res.Repairs)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, int64(50), res.InitialCost)
	assert.Equal(t, int64(10), res.Cost)
	assert.Equal(t, "[0@1, 5@1]\n[5@1, -@9]\n", pl.String())
}

// TestOptimize_StallWithoutRepair: the disconnected basis forces an anchor
// and the entering cell closes no cycle.
func TestOptimize_StallWithoutRepair(t *testing.T) {
	pl := build(t, [][]int64{{1, 1}, {1, 9}}, [][]int64{{5, nb}, {nb, 5}})
	before := pl.String()

	res, err := modi.Optimize(pl, modi.WithoutBasisRepair(), modi.WithLogger(log.Nop()))
	require.NoError(t, err)
	assert.Equal(t, modi.StatusStalled, res.Status)
	assert.False(t, res.Optimal())
	assert.Equal(t, 1, res.ForcedAnchors)
	assert.Zero(t, res.Repairs)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, plan.Position{Row: 1, Col: 0}, res.Entering)
	assert.Equal(t, int64(8), res.MaxDelta)
	assert.Equal(t, int64(50), res.Cost)
	assert.Equal(t, before, pl.String())
}

func TestOptimize_IterationLimit(t *testing.T) {
	costs, p := sample(t)
	res, err := modi.Solve(costs, p, modi.WithMaxIterations(1), modi.WithLogger(log.Nop()))
	require.NoError(t, err)
	assert.Equal(t, modi.StatusIterationLimit, res.Status)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, int64(433), res.Cost)
	assert.Equal(t, int64(14), res.MaxDelta)
}

func TestOptimize_Cancelled(t *testing.T) {
	costs, p := sample(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := modi.Solve(costs, p, modi.WithContext(ctx), modi.WithLogger(log.Nop()))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, int64(449), res.Cost)
}

func TestOptimize_ObserverAbort(t *testing.T) {
	costs, p := sample(t)
	stop := errors.New("stop")
	res, err := modi.Solve(costs, p, modi.WithLogger(log.Nop()), modi.WithOnIteration(func(modi.Iteration) error {
		return stop
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, int64(433), res.Cost)
	assert.NoError(t, res.Plan.CheckConservation())
}

func TestSolve_Errors(t *testing.T) {
	unbalanced, err := plan.NewParticipants([]int64{5, 5}, []int64{4, 5})
	require.NoError(t, err)
	_, err = modi.Solve([][]int64{{1, 2}, {3, 4}}, unbalanced)
	assert.ErrorIs(t, err, plan.ErrImbalance)

	balanced, err := plan.NewParticipants([]int64{5}, []int64{5})
	require.NoError(t, err)
	_, err = modi.Solve([][]int64{{1}}, balanced, modi.WithMethod("vogel"))
	assert.ErrorIs(t, err, initial.ErrUnknownMethod)

	_, err = modi.Optimize(nil)
	assert.ErrorIs(t, err, modi.ErrNilPlan)
}

func TestComputePotentials(t *testing.T) {
	costs, p := sample(t)
	pl, err := initial.LeastCost(costs, p)
	require.NoError(t, err)

	u, v, forced := modi.ComputePotentials(pl, 0)
	assert.Zero(t, forced)
	assert.True(t, u.Complete())
	assert.True(t, v.Complete())
	for _, c := range pl.Cells() {
		if c.Flow.IsBasic() {
			assert.Equal(t, c.Cost, u.MustGet(c.Pos.Col)+v.MustGet(c.Pos.Row), "basic %s", c.Pos)
		}
	}

	enter, delta, ok := modi.SelectEntering(pl, u, v)
	require.True(t, ok)
	assert.Equal(t, plan.Position{Row: 0, Col: 3}, enter)
	assert.Equal(t, int64(16), delta)
	assert.Equal(t, int64(16), pl.Cell(0, 3).Delta)
	assert.Zero(t, pl.Cell(0, 2).Delta, "basic cells carry no delta")
}

func TestComputePotentials_ForcedAnchor(t *testing.T) {
	pl := build(t, [][]int64{{1, 1}, {1, 9}}, [][]int64{{5, nb}, {nb, 5}})
	u, v, forced := modi.ComputePotentials(pl, 1)
	assert.Equal(t, 1, forced)
	assert.Equal(t, []int64{0, 0}, u.Values())
	assert.Equal(t, []int64{1, 9}, v.Values())
}

func TestRepairBasis(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		pl := build(t, [][]int64{{1, 2}, {3, 4}}, [][]int64{{5, 0}, {nb, 5}})
		assert.Zero(t, modi.RepairBasis(pl))
		assert.Equal(t, 3, pl.BasicCount())
	})
	t.Run("cheapest joining cell", func(t *testing.T) {
		// Components {s0,c0} {s1,c1} {s2,c2}; (1,2) and (2,0) are the
		// cheapest cells joining them.
		pl := build(t, [][]int64{
			{1, 9, 9},
			{9, 1, 2},
			{3, 9, 1},
		}, [][]int64{
			{4, nb, nb},
			{nb, 4, nb},
			{nb, nb, 4},
		})
		assert.Equal(t, 2, modi.RepairBasis(pl))
		assert.Equal(t, 5, pl.BasicCount())
		assert.False(t, pl.IsDegenerate())
		assert.True(t, pl.Cell(1, 2).Flow.IsBasic())
		assert.True(t, pl.Cell(2, 0).Flow.IsBasic())
		assert.Zero(t, pl.Cell(2, 0).Flow.Quantity())
		assert.NoError(t, pl.CheckConservation())
	})
}

// TestSolve_RandomCertified runs both initial methods on random instances and
// checks feasibility, monotone cost and the dual certificate.
func TestSolve_RandomCertified(t *testing.T) {
	for seed := int64(1); seed <= 120; seed++ {
		m := 2 + int(seed%5)
		n := 2 + int((seed/5)%6)
		in, err := generate.Balanced(m, n, 30, 25, seed)
		require.NoError(t, err)
		p, err := in.Participants()
		require.NoError(t, err)

		costs := map[initial.Method]int64{}
		for _, method := range []initial.Method{initial.MethodLeastCost, initial.MethodNorthWest} {
			t.Run(fmt.Sprintf("seed%d/%s", seed, method), func(t *testing.T) {
				last := int64(-1)
				res, err := modi.Solve(in.Costs, p,
					modi.WithMethod(method),
					modi.WithLogger(log.Nop()),
					modi.WithOnIteration(func(it modi.Iteration) error {
						if last >= 0 && it.Cost > last {
							return fmt.Errorf("cost rose from %d to %d", last, it.Cost)
						}
						last = it.Cost
						return nil
					}),
				)
				require.NoError(t, err)
				require.Equal(t, modi.StatusOptimal, res.Status)
				assert.LessOrEqual(t, res.Cost, res.InitialCost)
				assert.NoError(t, res.Plan.CheckConservation())
				assert.Equal(t, m+n-1, res.Plan.BasicCount())
				assertDual(t, res)
				costs[method] = res.Cost
			})
		}
		assert.Equal(t, costs[initial.MethodLeastCost], costs[initial.MethodNorthWest], "seed %d", seed)
	}
}
