// SPDX-License-Identifier: MIT

// Package lpcheck cross-checks transportation plans against a general LP
// solver. The transportation problem is written in standard form
//
//	minimize   Σ cost[i][j]·x[i][j]
//	subject to Σ_j x[i][j] = supply[i]   for every supplier i
//	           Σ_i x[i][j] = demand[j]   for every consumer j but the last
//	           x ≥ 0
//
// and solved with gonum's simplex. The last consumer row is dropped because
// it is implied by balance; keeping it would make A rank-deficient.
package lpcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transport/plan"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Tolerance is the simplex reduced-cost tolerance.
const Tolerance = 1e-9

var (
	// ErrNotOptimal indicates a plan whose cost exceeds the LP optimum.
	ErrNotOptimal = errors.New("lpcheck: plan cost differs from LP optimum")

	// ErrShape indicates a cost matrix that does not match supply/demand.
	ErrShape = errors.New("lpcheck: cost matrix does not match supply and demand")
)

// MinCost returns the optimal cost of the balanced problem.
//
// Complexity: builds a dense (m+n−1)×(m·n) matrix; simplex is exponential in
// the worst case and fast in practice for small instances.
func MinCost(costs [][]int64, supply, demand []int64) (float64, error) {
	m, n := len(supply), len(demand)
	if m == 0 || n == 0 || len(costs) != m {
		return 0, ErrShape
	}

	rows := m + n - 1
	c := make([]float64, m*n)
	A := mat.NewDense(rows, m*n, nil)
	b := make([]float64, rows)
	for i := 0; i < m; i++ {
		if len(costs[i]) != n {
			return 0, fmt.Errorf("row %d has %d costs, want %d: %w", i, len(costs[i]), n, ErrShape)
		}
		b[i] = float64(supply[i])
		for j := 0; j < n; j++ {
			k := i*n + j
			c[k] = float64(costs[i][j])
			A.Set(i, k, 1)
			if j < n-1 {
				A.Set(m+j, k, 1)
			}
		}
	}
	for j := 0; j < n-1; j++ {
		b[m+j] = float64(demand[j])
	}

	opt, _, err := lp.Simplex(c, A, b, Tolerance, nil)
	if err != nil {
		return 0, fmt.Errorf("lpcheck: simplex: %w", err)
	}

	return opt, nil
}

// Certify compares the cost of p with the LP optimum of its problem.
func Certify(p *plan.Plan) error {
	pt := p.Participants()
	supply := make([]int64, pt.SupplierCount())
	for i := range supply {
		supply[i] = pt.Supply(i)
	}
	demand := make([]int64, pt.ConsumerCount())
	for j := range demand {
		demand[j] = pt.Demand(j)
	}

	opt, err := MinCost(p.Costs(), supply, demand)
	if err != nil {
		return err
	}
	if want := int64(math.Round(opt)); p.TotalCost() != want {
		return fmt.Errorf("cost %d, optimum %d: %w", p.TotalCost(), want, ErrNotOptimal)
	}

	return nil
}
