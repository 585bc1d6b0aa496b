package validate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/ga"
	"github.com/katalvlaran/geotour/geo"
)

// Diagnostic reasons, one per failed check.
const (
	ReasonDuplicate       = "duplicate visit"
	ReasonIncomplete      = "must visit every location"
	ReasonNotOrigin       = "must start at origin"
	ReasonFitness         = "fitness computed incorrectly"
	ReasonUnknownLocation = "unknown location index"
)

// Decimals is the rounding precision of the fitness comparison.
const Decimals = 4

// Result is the outcome of Validate.
type Result struct {
	Valid   bool
	Reasons []string
	// Fitness is the recomputed (unrounded) tour length; zero when the
	// recomputation was skipped.
	Fitness float64
	// Checked reports whether Fitness was recomputed.
	Checked bool
}

// String renders one diagnostic line per reason.
func (r Result) String() string {
	if r.Valid {
		return fmt.Sprintf("valid (fitness %.*f)", Decimals, r.Fitness)
	}
	var b strings.Builder
	b.WriteString("invalid")
	for _, reason := range r.Reasons {
		b.WriteString("\n  - ")
		b.WriteString(reason)
	}

	return b.String()
}

// Validate checks tour and its claimed fitness against locations.
func Validate(ctx context.Context, tour ga.Tour, claimed float64, locations []geo.Location, dist distance.Distancer) (Result, error) {
	n := len(locations)
	if n == 0 {
		return Result{}, ga.ErrNoLocations
	}

	var (
		res     = Result{Reasons: []string{}}
		seen    = make(map[int]struct{}, len(tour))
		dup     bool
		unknown bool
	)
	for _, v := range tour {
		if v < 0 || v >= n {
			unknown = true
		}
		if _, ok := seen[v]; ok {
			dup = true
		}
		seen[v] = struct{}{}
	}

	if dup {
		res.Reasons = append(res.Reasons, ReasonDuplicate)
	} else if len(tour) != n {
		res.Reasons = append(res.Reasons, ReasonIncomplete)
	}
	if len(tour) > 0 && tour[0] != ga.Origin {
		res.Reasons = append(res.Reasons, ReasonNotOrigin)
	}
	if unknown {
		res.Reasons = append(res.Reasons, ReasonUnknownLocation)
	}

	if len(tour) > 0 && !unknown {
		stops := make([]geo.Location, len(tour))
		for i, v := range tour {
			stops[i] = locations[v]
		}
		f, err := ga.Cost(ctx, stops, dist)
		if err != nil {
			return Result{}, err
		}
		res.Fitness, res.Checked = f, true
		if Round(f) != Round(claimed) {
			res.Reasons = append(res.Reasons, ReasonFitness)
		}
	}

	res.Valid = len(res.Reasons) == 0

	return res, nil
}

// Round rounds x to Decimals digits after the point. Exact halves round away
// from zero, not to even.
func Round(x float64) float64 {
	const scale = 1e4
	return math.Round(x*scale) / scale
}
