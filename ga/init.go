package ga

import "math/rand"

// Initialize builds populationSize random tours over numLocations locations.
//
// Each member is [1..numLocations-1] shuffled with Fisher–Yates and prefixed by
// Origin. All members draw from one PRNG stream seeded with seed (seed==0 uses
// a fixed default), so identical arguments yield identical populations.
//
// Edge case: numLocations==1 yields tours equal to [0].
//
// Returns ErrNoLocations if numLocations<=0 and ErrBadOptions if populationSize<=0.
func Initialize(populationSize, numLocations int, seed int64) (Population, error) {
	return initialize(populationSize, numLocations, rngFromSeed(seed))
}

func initialize(populationSize, numLocations int, r *rand.Rand) (Population, error) {
	if numLocations <= 0 {
		return nil, ErrNoLocations
	}
	if populationSize <= 0 {
		return nil, ErrBadOptions
	}

	pop := make(Population, populationSize)
	var i, k int
	for i = 0; i < populationSize; i++ {
		rest := make([]int, numLocations-1)
		for k = range rest {
			rest[k] = k + 1
		}
		shuffleIntsInPlace(rest, r)

		t := make(Tour, 0, numLocations)
		t = append(t, Origin)
		pop[i] = append(t, rest...)
	}

	return pop, nil
}
