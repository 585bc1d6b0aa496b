package ga_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/ga"
	"github.com/katalvlaran/geotour/geo"
)

const seedDet int64 = 42

// fourCities is the LAX/A/B/C instance, origin LAX.
func fourCities() []geo.Location {
	return []geo.Location{
		{Name: "LAX", Latitude: 33.94, Longitude: -118.41},
		{Name: "A", Latitude: 34.0, Longitude: -118.5},
		{Name: "B", Latitude: 36.1, Longitude: -115.2},
		{Name: "C", Latitude: 37.6, Longitude: -122.4},
	}
}

// ring places n locations on a rippled circle in index order, so the
// index order is the optimal tour under planar distance.
func ring(n int) []geo.Location {
	out := make([]geo.Location, n)
	var th, r float64
	for i := range out {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + 0.05*float64(i%3)
		out[i] = geo.Location{
			Name:      string(rune('a' + i%26)),
			Latitude:  r * math.Sin(th),
			Longitude: r * math.Cos(th),
		}
	}

	return out
}

// planar treats coordinates as Cartesian points.
var planar = distance.Func(func(a, b geo.Location) (float64, error) {
	return math.Hypot(a.Latitude-b.Latitude, a.Longitude-b.Longitude), nil
})

// constant makes every tour cost the same.
var constant = distance.Func(func(a, b geo.Location) (float64, error) { return 1, nil })

var errBackend = errors.New("backend down")

// flaky fails after ok successful calls.
type flaky struct {
	ok    int64
	calls atomic.Int64
}

func (f *flaky) Distance(_ context.Context, a, b geo.Location) (float64, error) {
	if f.calls.Add(1) > f.ok {
		return 0, errBackend
	}

	return distance.HaversineKm(a, b), nil
}

// requireTour asserts the permutation + origin-first invariant.
func requireTour(t *testing.T, tour ga.Tour, n int) {
	t.Helper()
	require.NoError(t, ga.ValidateTour(tour, n), "tour %v", tour)
}
