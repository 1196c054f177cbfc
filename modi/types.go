// SPDX-License-Identifier: MIT

package modi

import (
	"context"
	"errors"

	"github.com/katalvlaran/transport/initial"
	"github.com/katalvlaran/transport/log"
	"github.com/katalvlaran/transport/plan"
	"github.com/katalvlaran/transport/stepping"
)

// ErrNilPlan is returned by Optimize when called with a nil plan.
var ErrNilPlan = errors.New("modi: plan is nil")

// DefaultMaxPasses bounds one propagation round before an anchor is forced.
const DefaultMaxPasses = 20000

// Status reports how Optimize stopped.
type Status int

const (
	// StatusOptimal: no non-basic cell improves the cost.
	StatusOptimal Status = iota
	// StatusStalled: the entering cell formed no cycle.
	StatusStalled
	// StatusIterationLimit: MaxIterations pivots were performed.
	StatusIterationLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusStalled:
		return "stalled"
	case StatusIterationLimit:
		return "iteration-limit"
	default:
		return "unknown"
	}
}

// Options configures Optimize and Solve.
type Options struct {
	// Ctx is checked once per iteration.
	Ctx context.Context

	// Method selects the initial plan builder used by Solve.
	Method initial.Method

	// MaxPasses is the propagation pass budget (≤0 means DefaultMaxPasses).
	MaxPasses int

	// MaxIterations caps the number of pivots; 0 means unlimited.
	MaxIterations int

	// RepairBasis connects a degenerate basis before each potential pass.
	RepairBasis bool

	Logger log.Logger

	// OnIteration is called after every pivot. A non-nil error aborts.
	OnIteration func(Iteration) error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, least-cost
// initial plan, basis repair on, unlimited iterations, log.Default.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Method:      initial.MethodLeastCost,
		MaxPasses:   DefaultMaxPasses,
		RepairBasis: true,
		Logger:      log.Default,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMethod selects the initial plan builder for Solve.
func WithMethod(m initial.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithMaxPasses overrides the propagation pass budget.
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

// WithMaxIterations caps the number of pivots (0 = unlimited).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithoutBasisRepair leaves degenerate bases as they are; propagation then
// relies on forced anchors only.
func WithoutBasisRepair() Option {
	return func(o *Options) { o.RepairBasis = false }
}

// WithLogger routes diagnostics to l.
func WithLogger(l log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnIteration installs a per-pivot observer.
func WithOnIteration(fn func(Iteration) error) Option {
	return func(o *Options) { o.OnIteration = fn }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.Logger == nil {
		o.Logger = log.Nop()
	}

	return o
}

// Iteration describes one completed pivot.
type Iteration struct {
	Index    int // 1-based
	Entering plan.Position
	Delta    int64
	Move     stepping.Move
	Cost     int64 // total cost after the pivot
}

// Result summarizes an optimization run.
type Result struct {
	Plan          *plan.Plan
	InitialCost   int64
	Cost          int64
	Iterations    int
	Repairs       int // cells promoted to Basic(0) by basis repair
	ForcedAnchors int // potentials forced to 0 on a propagation stall
	Status        Status

	// MaxDelta is the largest delta of the last selection (≤0 when optimal).
	MaxDelta int64
	// Entering is the cell that failed to pivot when Status is StatusStalled.
	Entering plan.Position

	// U (per consumer) and V (per supplier) are the final potentials; nil
	// for single-row/column plans.
	U []int64
	V []int64
}

// Optimal reports whether the result is certified optimal.
func (r Result) Optimal() bool { return r.Status == StatusOptimal }
