package geo

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strconv"
)

// ReadLocations decodes comma-separated location rows (name, latitude, longitude)
// from r in file order. There is no header row; empty lines are skipped.
//
// The first malformed row aborts the read with a *ParseError carrying its line.
func ReadLocations(r io.Reader) ([]Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked below to report ErrFieldCount
	cr.TrimLeadingSpace = true

	var (
		locations []Location
		row       []string
		loc       Location
		err       error
	)
	for {
		row, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var ce *csv.ParseError
			line := 0
			if errors.As(err, &ce) {
				line = ce.Line
			}

			return nil, &ParseError{Line: line, Field: "row", Err: err}
		}
		line, _ := cr.FieldPos(0)
		if len(row) != 3 {
			return nil, &ParseError{Line: line, Field: "row", Value: strconv.Itoa(len(row)) + " fields", Err: ErrFieldCount}
		}

		loc, err = NewLocation(row[0], row[1], row[2])
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}

			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// LoadLocations opens path and decodes it with ReadLocations.
func LoadLocations(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLocations(f)
}

// Digest returns a stable hex fingerprint of an ordered location set.
// Two inputs share a digest only if names and coordinates match in order.
func Digest(locations []Location) string {
	h := sha256.New()
	var buf []byte
	for _, l := range locations {
		buf = buf[:0]
		buf = append(buf, l.Name...)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, l.Latitude, 'g', -1, 64)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, l.Longitude, 'g', -1, 64)
		buf = append(buf, '\n')
		h.Write(buf)
	}

	return hex.EncodeToString(h.Sum(nil))
}
