// Package ga - tour utilities shared by the initializer, operators and engine.
//
// Helpers operate purely on tour structure (index sequences):
//   - ValidateTour: permutation of [0..n-1] with Origin first.
//   - Clone / Equal: copying and comparison.
//   - Reversed: the same cycle walked in the opposite direction.
//   - Names: map indices to location names for display.
//   - reverseSegmentInPlace: segment reversal used by inversion and 2-opt.
package ga

import "github.com/katalvlaran/geotour/geo"

// ValidateTour checks that t is a permutation of [0..n-1] starting at Origin.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	if n <= 0 {
		return ErrNoLocations
	}
	if len(t) != n {
		return ErrTourLength
	}
	if t[0] != Origin {
		return ErrNotOrigin
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Equal reports whether t and u visit the same indices in the same order.
func (t Tour) Equal(u Tour) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}

	return true
}

// Reversed returns the cycle walked backwards, keeping the first element in place:
// [0 a b c] → [0 c b a]. With a symmetric distance both have the same fitness.
func (t Tour) Reversed() Tour {
	out := t.Clone()
	if len(out) > 2 {
		reverseSegmentInPlace(out, 1, len(out)-1)
	}

	return out
}

// Names maps t through locations. Indices outside the location set render as "?".
func (t Tour) Names(locations []geo.Location) []string {
	out := make([]string, len(t))
	for i, v := range t {
		if v < 0 || v >= len(locations) {
			out[i] = "?"
			continue
		}
		out[i] = locations[v].Name
	}

	return out
}

// reverseSegmentInPlace reverses t[i..k] inclusive.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(t Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
