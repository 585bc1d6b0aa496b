// Package ga - RNG utilities shared by the initializer and the operators.
//
// A run owns exactly one *rand.Rand created from Options.Seed and threads it
// through every random decision, so a fixed seed reproduces the whole run.
// No process-wide random state is read or written.
package ga

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a,
// drawing j = Intn(i+1) for i from len(a)-1 down to 1.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, r *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// distinctPositions draws two different positions from [1..n-1] (n ≥ 3),
// returned in ascending order.
func distinctPositions(n int, r *rand.Rand) (int, int) {
	i := 1 + r.Intn(n-1)
	j := 1 + r.Intn(n-2)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}
