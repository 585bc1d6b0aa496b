// Package ga - fitness evaluation.
//
// Fitness is the cyclic tour length:
//
//	Σ_{i=1..n-1} d(stop[i-1], stop[i]) + d(stop[n-1], stop[0])
//
// summed in that order, so the same tour always produces bit-identical values
// for a deterministic distance, whether evaluated alone or in parallel.
package ga

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/geo"
)

// Cost returns the cyclic length of visiting stops in order and returning to
// stops[0]. Stops may repeat; no structural checks are made beyond emptiness.
// A single stop costs d(stop, stop).
//
// Distance failures are returned as *distance.UnavailableError.
func Cost(ctx context.Context, stops []geo.Location, dist distance.Distancer) (float64, error) {
	if len(stops) == 0 {
		return 0, ErrNoLocations
	}
	if dist == nil {
		return 0, ErrNilDistancer
	}

	var (
		sum float64
		d   float64
		err error
		i   int
		n   = len(stops)
	)
	for i = 1; i < n; i++ {
		d, err = dist.Distance(ctx, stops[i-1], stops[i])
		if err != nil {
			return 0, distance.Wrap(stops[i-1], stops[i], err)
		}
		sum += d
	}
	// closing leg back to the origin
	d, err = dist.Distance(ctx, stops[n-1], stops[0])
	if err != nil {
		return 0, distance.Wrap(stops[n-1], stops[0], err)
	}

	return sum + d, nil
}

// Evaluate returns the fitness of tour over locations.
//
// Contract: len(tour)==len(locations) and every index lies in [0, len(locations)).
// Repeated indices are not rejected here (see ValidateTour).
//
// Errors: ErrNoLocations, ErrTourLength, ErrNotPermutation (index out of range),
// or the distance failure.
//
// Complexity: O(n) distance calls.
func Evaluate(ctx context.Context, tour Tour, locations []geo.Location, dist distance.Distancer) (float64, error) {
	n := len(locations)
	if n == 0 {
		return 0, ErrNoLocations
	}
	if len(tour) != n {
		return 0, ErrTourLength
	}

	stops := make([]geo.Location, n)
	for i, v := range tour {
		if v < 0 || v >= n {
			return 0, ErrNotPermutation
		}
		stops[i] = locations[v]
	}

	return Cost(ctx, stops, dist)
}

// EvaluatePopulation scores every tour of pop, returning records in population
// order (records[i].ID == i).
//
// With workers>1 tours are evaluated concurrently, at most workers at a time;
// each tour is still summed sequentially so the values equal the sequential
// ones. The first failure cancels the remaining work and is returned.
func EvaluatePopulation(ctx context.Context, pop Population, locations []geo.Location, dist distance.Distancer, workers int) ([]FitnessRecord, error) {
	records := make([]FitnessRecord, len(pop))

	if workers <= 1 {
		for i, t := range pop {
			f, err := Evaluate(ctx, t, locations, dist)
			if err != nil {
				return nil, err
			}
			records[i] = FitnessRecord{ID: i, Fitness: f}
		}

		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range pop {
		g.Go(func() error {
			f, err := Evaluate(gctx, t, locations, dist)
			if err != nil {
				return err
			}
			records[i] = FitnessRecord{ID: i, Fitness: f}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// CompareFitness orders records by Fitness ascending (better first), breaking
// ties by ID so that sorting is deterministic.
func CompareFitness(a, b FitnessRecord) int {
	if c := cmp.Compare(a.Fitness, b.Fitness); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

// SortRecords sorts records in place with CompareFitness.
func SortRecords(records []FitnessRecord) {
	slices.SortFunc(records, CompareFitness)
}
