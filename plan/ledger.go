// SPDX-License-Identifier: MIT

package plan

// Ledger is the scratch buffer of remaining supply and demand owned by an
// initial-plan builder. It is consumed destructively and never attached to
// a Plan.
type Ledger struct {
	supply []int64
	demand []int64
}

// RemainingSupply returns what supplier i can still ship.
func (l *Ledger) RemainingSupply(i int) int64 { return l.supply[i] }

// RemainingDemand returns what consumer j still needs.
func (l *Ledger) RemainingDemand(j int) int64 { return l.demand[j] }

// Allocate ships min(remaining supply of i, remaining demand of j) over the
// route (i, j) and returns the amount.
//
// When demand is strictly smaller, the demand is zeroed and the supply
// reduced; otherwise (including equality) the supply is zeroed and the
// demand reduced.
func (l *Ledger) Allocate(i, j int) int64 {
	s, d := l.supply[i], l.demand[j]
	if d < s {
		l.demand[j] = 0
		l.supply[i] = s - d

		return d
	}
	l.supply[i] = 0
	l.demand[j] = d - s

	return s
}

// Exhausted reports whether every supply and demand has reached zero.
func (l *Ledger) Exhausted() bool {
	for _, s := range l.supply {
		if s != 0 {
			return false
		}
	}
	for _, d := range l.demand {
		if d != 0 {
			return false
		}
	}

	return true
}
