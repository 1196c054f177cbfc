// SPDX-License-Identifier: MIT

package plan

import "errors"

// Sentinel errors of the plan package. Callers match them with errors.Is;
// call sites wrap with fmt.Errorf("...: %w", ErrX) when extra context helps.
var (
	// ErrNoSuppliers indicates an empty supply vector.
	ErrNoSuppliers = errors.New("plan: at least one supplier is required")

	// ErrNoConsumers indicates an empty demand vector.
	ErrNoConsumers = errors.New("plan: at least one consumer is required")

	// ErrNegativeQuantity indicates a negative supply or demand.
	ErrNegativeQuantity = errors.New("plan: supply and demand must be non-negative")

	// ErrImbalance indicates total supply differs from total demand.
	ErrImbalance = errors.New("plan: total supply does not equal total demand")

	// ErrBadShape indicates the cost matrix row count differs from the supplier count.
	ErrBadShape = errors.New("plan: cost matrix rows must match supplier count")

	// ErrNonRectangular indicates a cost row whose length differs from the consumer count.
	ErrNonRectangular = errors.New("plan: cost matrix columns must match consumer count")

	// ErrNegativeCost indicates a negative unit tariff.
	ErrNegativeCost = errors.New("plan: unit costs must be non-negative")

	// ErrOutOfRange indicates a position outside the plan grid.
	ErrOutOfRange = errors.New("plan: position out of range")

	// ErrConservation indicates a row or column whose basic flows do not sum
	// to the original supply or demand.
	ErrConservation = errors.New("plan: flow conservation violated")
)
