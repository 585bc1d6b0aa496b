package geo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the geo package.
var (
	// ErrParse indicates malformed location data. Every *ParseError matches it.
	ErrParse = errors.New("geo: malformed location data")

	// ErrFieldCount indicates a row that does not have exactly name, latitude and longitude.
	ErrFieldCount = errors.New("geo: expected 3 fields per row")
)

// DegToRad is the factor converting degrees to radians.
const DegToRad = 0.017453292519943295 // math.Pi / 180

// Location is a named point on the globe, latitude/longitude in degrees.
// Latitude is assumed to lie in [-90, 90] and longitude in [-180, 180].
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// RadianLocation is the radian view of a Location. It is a value copy and
// never replaces the original.
type RadianLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// ParseError reports a location row that could not be decoded.
//
// Line is the 1-based row number when the error comes from ReadLocations and
// 0 when it comes from NewLocation directly.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("geo: line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}

	return fmt.Sprintf("geo: %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap exposes the underlying cause (strconv.NumError or ErrFieldCount).
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse as a match for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
