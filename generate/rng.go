// SPDX-License-Identifier: MIT

// Package generate - RNG utilities shared by the instance generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package generate

import (
	"math/rand"
	"sort"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// splitTotal cuts total into n non-negative parts that sum to total, using
// n−1 uniform cut points in [0, total].
//
// Complexity: O(n log n) time, O(n) space.
func splitTotal(total int64, n int, r *rand.Rand) []int64 {
	cuts := make([]int64, n+1)
	for k := 1; k < n; k++ {
		cuts[k] = r.Int63n(total + 1)
	}
	cuts[n] = total
	sort.Slice(cuts[1:n], func(a, b int) bool { return cuts[1+a] < cuts[1+b] })

	parts := make([]int64, n)
	for k := 0; k < n; k++ {
		parts[k] = cuts[k+1] - cuts[k]
	}

	return parts
}
