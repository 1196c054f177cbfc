// SPDX-License-Identifier: MIT

package stepping

import (
	"errors"

	"github.com/katalvlaran/transport/plan"
)

var (
	// ErrCycleNotFound indicates that no closed alternating cycle exists
	// through the entering route and the current basis.
	ErrCycleNotFound = errors.New("stepping: no cycle through entering cell")

	// ErrEnteringBasic indicates the entering route is already basic.
	ErrEnteringBasic = errors.New("stepping: entering cell is already basic")
)

// Cycle is a closed alternating path. Corners[0] is the entering cell; the
// closing edge back to it is implicit.
type Cycle struct {
	Corners []plan.Position
}

// Len returns the number of corners.
func (c Cycle) Len() int { return len(c.Corners) }

// Entering returns the first corner.
func (c Cycle) Entering() plan.Position { return c.Corners[0] }

// Gains reports whether corner k receives flow (even index) or gives it up.
func (c Cycle) Gains(k int) bool { return k%2 == 0 }

// Move describes an applied pivot.
type Move struct {
	Cycle   Cycle         // corners visited, entering first
	Theta   int64         // units shifted around the cycle
	Leaving plan.Position // route that left the basis
}
