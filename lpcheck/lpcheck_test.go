package lpcheck_test

import (
	"testing"

	"github.com/katalvlaran/transport/generate"
	"github.com/katalvlaran/transport/initial"
	"github.com/katalvlaran/transport/log"
	"github.com/katalvlaran/transport/lpcheck"
	"github.com/katalvlaran/transport/modi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinCost_Sample(t *testing.T) {
	in := generate.Sample()
	opt, err := lpcheck.MinCost(in.Costs, in.Supply, in.Demand)
	require.NoError(t, err)
	assert.InDelta(t, 335.0, opt, 1e-6)
}

func TestMinCost_Shape(t *testing.T) {
	_, err := lpcheck.MinCost([][]int64{{1, 2}}, []int64{3}, []int64{1, 1, 1})
	assert.ErrorIs(t, err, lpcheck.ErrShape)

	_, err = lpcheck.MinCost(nil, nil, []int64{1})
	assert.ErrorIs(t, err, lpcheck.ErrShape)
}

func TestCertify(t *testing.T) {
	in := generate.Sample()
	p, err := in.Participants()
	require.NoError(t, err)

	// The least-cost start (449) is feasible but not optimal.
	start, err := initial.LeastCost(in.Costs, p)
	require.NoError(t, err)
	assert.ErrorIs(t, lpcheck.Certify(start), lpcheck.ErrNotOptimal)

	res, err := modi.Optimize(start, modi.WithLogger(log.Nop()))
	require.NoError(t, err)
	assert.NoError(t, lpcheck.Certify(res.Plan))
}

// TestCertify_Random checks MODI optima against the simplex on random
// instances.
func TestCertify_Random(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		in, err := generate.Balanced(3+int(seed%3), 4+int(seed%4), 40, 30, seed)
		require.NoError(t, err)
		p, err := in.Participants()
		require.NoError(t, err)

		res, err := modi.Solve(in.Costs, p, modi.WithLogger(log.Nop()))
		require.NoError(t, err)
		require.Equal(t, modi.StatusOptimal, res.Status)
		assert.NoError(t, lpcheck.Certify(res.Plan), "seed %d", seed)
	}
}
