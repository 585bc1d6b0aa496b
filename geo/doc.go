// Package geo models the named geographic points a tour visits.
//
// A Location carries a name and a latitude/longitude pair in degrees. Locations
// are built from text (the way they arrive in a comma-separated data file) and
// are never mutated afterwards; ToRadians returns a separate RadianLocation
// value for trigonometric distance formulas.
//
// Input format (ReadLocations / LoadLocations):
//
//	LAX,33.94,-118.41
//	A,34.0,-118.5
//	B,36.1,-115.2
//
// One location per line, no header row. The first row is the origin (index 0)
// of every tour.
//
// Errors:
//   - *ParseError (matches ErrParse) for malformed numeric text or a row that
//     does not have exactly three fields.
package geo
