package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// NewLocation builds a Location from its textual fields.
// Surrounding whitespace around the numbers is ignored.
//
// Returns *ParseError if latitude or longitude is not a valid decimal number.
func NewLocation(name, latitude, longitude string) (Location, error) {
	lat, err := parseCoordinate("latitude", latitude)
	if err != nil {
		return Location{}, err
	}
	lon, err := parseCoordinate("longitude", longitude)
	if err != nil {
		return Location{}, err
	}

	return Location{Name: name, Latitude: lat, Longitude: lon}, nil
}

func parseCoordinate(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: text, Err: err}
	}

	return v, nil
}

// ToRadians returns a copy of l with latitude and longitude scaled by π/180.
// The name is preserved; l itself is left untouched.
func (l Location) ToRadians() RadianLocation {
	return RadianLocation{
		Name:      l.Name,
		Latitude:  l.Latitude * DegToRad,
		Longitude: l.Longitude * DegToRad,
	}
}

// String renders l as "Name (lat, lon)".
func (l Location) String() string {
	return fmt.Sprintf("%s (%g, %g)", l.Name, l.Latitude, l.Longitude)
}
