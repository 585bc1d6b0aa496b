package ga

import "math/rand"

// Mutator perturbs a tour in place with probability rate, keeping it a valid
// tour. It reports whether t was changed.
type Mutator interface {
	Mutate(t Tour, rate float64, r *rand.Rand) bool
}

// SwapMutation exchanges two distinct non-origin positions.
type SwapMutation struct{}

// Mutate implements Mutator. One Float64 is always drawn for the coin flip.
func (SwapMutation) Mutate(t Tour, rate float64, r *rand.Rand) bool {
	if r.Float64() >= rate || len(t) < 3 {
		return false
	}
	i, j := distinctPositions(len(t), r)
	t[i], t[j] = t[j], t[i]

	return true
}

// InversionMutation reverses the segment between two distinct non-origin positions.
type InversionMutation struct{}

// Mutate implements Mutator. One Float64 is always drawn for the coin flip.
func (InversionMutation) Mutate(t Tour, rate float64, r *rand.Rand) bool {
	if r.Float64() >= rate || len(t) < 3 {
		return false
	}
	i, j := distinctPositions(len(t), r)
	reverseSegmentInPlace(t, i, j)

	return true
}
