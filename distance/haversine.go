package distance

import (
	"context"
	"math"

	"github.com/katalvlaran/geotour/geo"
)

// EarthRadiusKm is the mean earth radius used by Haversine.
const EarthRadiusKm = 6371.0088

// Haversine is the local great-circle backend. The zero value uses EarthRadiusKm.
type Haversine struct {
	RadiusKm float64
}

// Distance returns the great-circle distance between a and b in kilometres.
// It never fails.
func (h Haversine) Distance(_ context.Context, a, b geo.Location) (float64, error) {
	r := h.RadiusKm
	if r == 0 {
		r = EarthRadiusKm
	}

	return r * centralAngle(a.ToRadians(), b.ToRadians()), nil
}

// HaversineKm is the plain-function form of Haversine{}.
func HaversineKm(a, b geo.Location) float64 {
	return EarthRadiusKm * centralAngle(a.ToRadians(), b.ToRadians())
}

// centralAngle returns the angle between two points on the unit sphere.
func centralAngle(p, q geo.RadianLocation) float64 {
	var (
		dLat = q.Latitude - p.Latitude
		dLon = q.Longitude - p.Longitude
		s1   = math.Sin(dLat / 2)
		s2   = math.Sin(dLon / 2)
		h    = s1*s1 + math.Cos(p.Latitude)*math.Cos(q.Latitude)*s2*s2
	)
	// rounding can push h marginally above 1 for antipodal points
	if h > 1 {
		h = 1
	}

	return 2 * math.Asin(math.Sqrt(h))
}
