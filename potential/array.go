// SPDX-License-Identifier: MIT

// Package potential provides the sparse dual-value array used by the MODI
// method: one slot per supplier (V) or per consumer (U), each either holding
// a known integer potential or explicitly unknown.
//
// Unknown is a separate state, not a magic value, so every int64 is a legal
// potential. Indexing outside [0, Len()) is a programmer error and panics.
//
// Complexity: Get/Set/Known O(1); Clear, FirstUnknown, Complete O(n).
package potential

import "fmt"

// Array is a fixed-length array of optional potentials.
type Array struct {
	vals  []int64
	known []bool
}

// New returns an Array of n unknown slots.
func New(n int) *Array {
	if n < 0 {
		panic(fmt.Sprintf("potential: negative length %d", n))
	}

	return &Array{
		vals:  make([]int64, n),
		known: make([]bool, n),
	}
}

// Len returns the number of slots.
func (a *Array) Len() int { return len(a.vals) }

// Get returns the value at i and whether it is known.
func (a *Array) Get(i int) (int64, bool) {
	a.check(i)

	return a.vals[i], a.known[i]
}

// MustGet returns the value at i and panics when it is unknown.
func (a *Array) MustGet(i int) int64 {
	a.check(i)
	if !a.known[i] {
		panic(fmt.Sprintf("potential: slot %d is unknown", i))
	}

	return a.vals[i]
}

// Set stores v at i, marking the slot known.
func (a *Array) Set(i int, v int64) {
	a.check(i)
	a.vals[i] = v
	a.known[i] = true
}

// Known reports whether slot i holds a value.
func (a *Array) Known(i int) bool {
	a.check(i)

	return a.known[i]
}

// Clear marks every slot unknown.
func (a *Array) Clear() {
	for i := range a.known {
		a.known[i] = false
		a.vals[i] = 0
	}
}

// FirstUnknown returns the lowest unknown index, or -1 when all are known.
func (a *Array) FirstUnknown() int {
	for i, k := range a.known {
		if !k {
			return i
		}
	}

	return -1
}

// Complete reports whether every slot is known.
func (a *Array) Complete() bool { return a.FirstUnknown() == -1 }

// Values returns a copy of the slots; unknown slots read as zero.
func (a *Array) Values() []int64 {
	out := make([]int64, len(a.vals))
	copy(out, a.vals)

	return out
}

func (a *Array) check(i int) {
	if i < 0 || i >= len(a.vals) {
		panic(fmt.Sprintf("potential: index %d out of range [0,%d)", i, len(a.vals)))
	}
}
