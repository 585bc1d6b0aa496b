package ga

import "math/rand"

// Crossover breeds two children from two parents. Parents are valid tours of
// equal length; children must be valid tours too and must not alias the parents.
type Crossover interface {
	Cross(p1, p2 Tour, r *rand.Rand) (Tour, Tour)
}

// OrderedCrossover is OX1 restricted to positions [1..n-1] so the origin stays
// first: a random slice [i..j] is copied from one parent, and the remaining
// slots, starting after j and wrapping, are filled with the other parent's
// genes in the order they appear from j+1 on, skipping those already placed.
type OrderedCrossover struct{}

// Cross implements Crossover. Tours shorter than 3 have a single ordering and
// are returned as copies.
func (OrderedCrossover) Cross(p1, p2 Tour, r *rand.Rand) (Tour, Tour) {
	n := len(p1)
	if n < 3 {
		return p1.Clone(), p2.Clone()
	}
	i := 1 + r.Intn(n-1)
	j := 1 + r.Intn(n-1)
	if i > j {
		i, j = j, i
	}

	return orderedChild(p1, p2, i, j), orderedChild(p2, p1, i, j)
}

// orderedChild keeps donor[i..j] and fills the rest from filler.
func orderedChild(donor, filler Tour, i, j int) Tour {
	var (
		n     = len(donor)
		m     = n - 1 // movable positions 1..n-1
		child = make(Tour, n)
		used  = make([]bool, n)
		k     int
	)
	child[0] = Origin
	used[Origin] = true
	for k = i; k <= j; k++ {
		child[k] = donor[k]
		used[donor[k]] = true
	}

	w := j // last written position
	var g int
	for step := 0; step < m; step++ {
		g = filler[1+(j+step)%m]
		if used[g] {
			continue
		}
		w = 1 + w%m
		child[w] = g
		used[g] = true
	}

	return child
}
