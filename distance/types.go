package distance

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geotour/geo"
)

// Sentinel errors returned by the distance package.
var (
	// ErrUnavailable indicates that a distance could not be obtained.
	// Every *UnavailableError matches it.
	ErrUnavailable = errors.New("distance: unavailable")

	// ErrBadResponse indicates a backend answered with something that is not a distance.
	ErrBadResponse = errors.New("distance: malformed response")

	// ErrNilBackend indicates a decorator was built around a nil Distancer.
	ErrNilBackend = errors.New("distance: nil backend")
)

// Distancer computes the distance between two locations.
// Implementations must be deterministic for identical inputs and safe for
// concurrent use.
type Distancer interface {
	Distance(ctx context.Context, a, b geo.Location) (float64, error)
}

// Func adapts a plain function to a Distancer.
type Func func(a, b geo.Location) (float64, error)

// Distance calls f(a, b). Errors are wrapped into *UnavailableError.
func (f Func) Distance(_ context.Context, a, b geo.Location) (float64, error) {
	d, err := f(a, b)
	if err != nil {
		return 0, Wrap(a, b, err)
	}

	return d, nil
}

// UnavailableError reports a failed distance lookup for one leg.
type UnavailableError struct {
	From string
	To   string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("distance: %s -> %s: %v", e.From, e.To, e.Err)
}

// Unwrap exposes the backend failure.
func (e *UnavailableError) Unwrap() error { return e.Err }

// Is reports ErrUnavailable as a match for every UnavailableError.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Wrap converts err into an *UnavailableError for the leg a→b.
// It returns nil for a nil err and err itself if it already is one.
func Wrap(a, b geo.Location, err error) error {
	if err == nil {
		return nil
	}
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return err
	}

	return &UnavailableError{From: a.Name, To: b.Name, Err: err}
}

// coordKey identifies an ordered pair of coordinates. Names are not part of the
// key: the distance depends on position only.
type coordKey struct {
	lat1, lon1, lat2, lon2 float64
}

func keyOf(a, b geo.Location) coordKey {
	return coordKey{a.Latitude, a.Longitude, b.Latitude, b.Longitude}
}

// checkLeg rejects values no backend may report as a distance.
func checkLeg(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v is not a distance", ErrBadResponse, v)
	}

	return nil
}
