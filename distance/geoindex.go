package distance

import (
	"context"

	"github.com/hailocab/go-geoindex"

	"github.com/katalvlaran/geotour/geo"
)

// GeoIndex computes distances with github.com/hailocab/go-geoindex, converted
// to kilometres. The library trades accuracy on very long legs for speed, so
// it suits regional location sets.
type GeoIndex struct{}

// Distance returns the geoindex distance between a and b in kilometres.
func (GeoIndex) Distance(_ context.Context, a, b geo.Location) (float64, error) {
	p1 := &geoindex.GeoPoint{Pid: a.Name, Plat: a.Latitude, Plon: a.Longitude}
	p2 := &geoindex.GeoPoint{Pid: b.Name, Plat: b.Latitude, Plon: b.Longitude}

	return float64(geoindex.Distance(p1, p2)) / 1000, nil
}
