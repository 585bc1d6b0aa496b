// Package ga - 2-opt local search used to polish the final best tour.
//
// TwoOpt performs deterministic first-improvement 2-opt on an origin-first tour
// with an implicit closing leg. A move reverses the segment [i..k]
// (1 ≤ i < k ≤ n−1) and replaces arcs (a,b),(c,d) with (a,c),(b,d), where
// a=T[i−1], b=T[i], c=T[k], d=T[(k+1) mod n]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// Design:
//   - All n·(n−1) leg lengths are prefetched once through the Distancer into a
//     flat buffer w[u*n+v]; the scan itself makes no distance calls.
//   - Δ assumes a symmetric distance. The caller re-evaluates the returned tour
//     with Evaluate and keeps it only if it is really shorter.
//   - The origin never moves, so the result is still a valid tour.
//
// Complexity: O(n²) distance calls for the prefetch; O(iter·n²) scan.
package ga

import (
	"context"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/geo"
)

// twoOptEps is the strict acceptance threshold: a move is applied only if Δ < −twoOptEps.
const twoOptEps = 1e-12

// TwoOpt improves tour with first-improvement 2-opt until no improving move
// remains or maxIters moves were accepted (0 = unlimited). The input is not
// modified. Context cancellation is checked after every accepted move.
func TwoOpt(ctx context.Context, tour Tour, locations []geo.Location, dist distance.Distancer, maxIters int) (Tour, error) {
	n := len(locations)
	if err := ValidateTour(tour, n); err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, ErrNilDistancer
	}
	cur := tour.Clone()
	if n < 4 {
		// every ordering of ≤ 3 stops is the same cycle up to direction
		return cur, nil
	}

	w, err := prefetchWeights(ctx, locations, dist)
	if err != nil {
		return nil, err
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	var (
		accepted   int
		a, b, c, d int
		i, k       int
		delta      float64
	)
	for {
		improved := false
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]

				delta = (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta >= -twoOptEps {
					continue
				}
				reverseSegmentInPlace(cur, i, k)
				accepted++
				improved = true

				if maxIters > 0 && accepted >= maxIters {
					return cur, nil
				}
				if err = ctx.Err(); err != nil {
					return nil, err
				}

				break
			}
		}
		if !improved {
			return cur, nil
		}
	}
}

// prefetchWeights fills w[u*n+v] = d(locations[u], locations[v]) for u≠v.
func prefetchWeights(ctx context.Context, locations []geo.Location, dist distance.Distancer) ([]float64, error) {
	n := len(locations)
	w := make([]float64, n*n)

	var (
		u, v int
		x    float64
		err  error
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			x, err = dist.Distance(ctx, locations[u], locations[v])
			if err != nil {
				return nil, distance.Wrap(locations[u], locations[v], err)
			}
			w[u*n+v] = x
		}
	}

	return w, nil
}
