// SPDX-License-Identifier: MIT

package plan

import "fmt"

// Supplier is a source node with a fixed supply.
type Supplier struct {
	Index  int   // row of the supplier in the plan
	Supply int64 // units available
}

// Consumer is a sink node with a fixed demand.
type Consumer struct {
	Index  int   // column of the consumer in the plan
	Demand int64 // units required
}

// Participants is an immutable snapshot of suppliers and consumers.
// It always reports the original quantities; see Ledger for a mutable copy.
type Participants struct {
	suppliers []Supplier
	consumers []Consumer
}

// NewParticipants validates and snapshots the supply and demand vectors.
// Balance is NOT checked here (see CheckBalance) so that unbalanced inputs
// can still be inspected and reported.
func NewParticipants(supply, demand []int64) (*Participants, error) {
	if len(supply) == 0 {
		return nil, ErrNoSuppliers
	}
	if len(demand) == 0 {
		return nil, ErrNoConsumers
	}

	p := &Participants{
		suppliers: make([]Supplier, len(supply)),
		consumers: make([]Consumer, len(demand)),
	}
	for i, s := range supply {
		if s < 0 {
			return nil, fmt.Errorf("supplier %d supply %d: %w", i, s, ErrNegativeQuantity)
		}
		p.suppliers[i] = Supplier{Index: i, Supply: s}
	}
	for j, d := range demand {
		if d < 0 {
			return nil, fmt.Errorf("consumer %d demand %d: %w", j, d, ErrNegativeQuantity)
		}
		p.consumers[j] = Consumer{Index: j, Demand: d}
	}

	return p, nil
}

// SupplierCount returns the number of suppliers (plan height).
func (p *Participants) SupplierCount() int { return len(p.suppliers) }

// ConsumerCount returns the number of consumers (plan width).
func (p *Participants) ConsumerCount() int { return len(p.consumers) }

// Supply returns the original supply of supplier i. Panics when i is out of range.
func (p *Participants) Supply(i int) int64 {
	if i < 0 || i >= len(p.suppliers) {
		panic(fmt.Sprintf("plan: supplier index %d out of range [0,%d)", i, len(p.suppliers)))
	}

	return p.suppliers[i].Supply
}

// Demand returns the original demand of consumer j. Panics when j is out of range.
func (p *Participants) Demand(j int) int64 {
	if j < 0 || j >= len(p.consumers) {
		panic(fmt.Sprintf("plan: consumer index %d out of range [0,%d)", j, len(p.consumers)))
	}

	return p.consumers[j].Demand
}

// Suppliers returns a copy of the supplier list.
func (p *Participants) Suppliers() []Supplier {
	return append([]Supplier(nil), p.suppliers...)
}

// Consumers returns a copy of the consumer list.
func (p *Participants) Consumers() []Consumer {
	return append([]Consumer(nil), p.consumers...)
}

// TotalSupply returns Σ supply.
func (p *Participants) TotalSupply() int64 {
	var sum int64
	for _, s := range p.suppliers {
		sum += s.Supply
	}

	return sum
}

// TotalDemand returns Σ demand.
func (p *Participants) TotalDemand() int64 {
	var sum int64
	for _, c := range p.consumers {
		sum += c.Demand
	}

	return sum
}

// CheckBalance returns ErrImbalance (with both totals) unless
// TotalSupply() == TotalDemand().
func (p *Participants) CheckBalance() error {
	if s, d := p.TotalSupply(), p.TotalDemand(); s != d {
		return fmt.Errorf("supply %d, demand %d: %w", s, d, ErrImbalance)
	}

	return nil
}

// Clone returns an independent deep copy.
func (p *Participants) Clone() *Participants {
	return &Participants{
		suppliers: p.Suppliers(),
		consumers: p.Consumers(),
	}
}

// Ledger returns a fresh mutable buffer of remaining quantities, initialised
// from the original supply and demand. The Participants are not affected by
// any later Ledger mutation.
func (p *Participants) Ledger() *Ledger {
	l := &Ledger{
		supply: make([]int64, len(p.suppliers)),
		demand: make([]int64, len(p.consumers)),
	}
	for i, s := range p.suppliers {
		l.supply[i] = s.Supply
	}
	for j, c := range p.consumers {
		l.demand[j] = c.Demand
	}

	return l
}
