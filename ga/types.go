package ga

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the ga package. All refinements match ErrInvalidInput.
var (
	// ErrInvalidInput indicates a structurally impossible request.
	ErrInvalidInput = errors.New("ga: invalid input")

	// ErrNoLocations indicates an empty location set; no tour is defined.
	ErrNoLocations = fmt.Errorf("%w: no locations", ErrInvalidInput)

	// ErrTourLength indicates a tour whose length differs from the location count.
	ErrTourLength = fmt.Errorf("%w: tour length does not match location count", ErrInvalidInput)

	// ErrNotPermutation indicates an out-of-range or repeated location index.
	ErrNotPermutation = fmt.Errorf("%w: tour is not a permutation", ErrInvalidInput)

	// ErrNotOrigin indicates a tour that does not start at the origin (index 0).
	ErrNotOrigin = fmt.Errorf("%w: tour does not start at origin", ErrInvalidInput)

	// ErrBadOptions indicates an inconsistent Options value.
	ErrBadOptions = fmt.Errorf("%w: bad options", ErrInvalidInput)

	// ErrNilDistancer indicates that no distance capability was supplied.
	ErrNilDistancer = fmt.Errorf("%w: nil distancer", ErrInvalidInput)
)

// Origin is the fixed first location of every tour.
const Origin = 0

// Tour is an ordered visit of all location indices, starting at Origin.
// The closing leg back to Origin is implicit.
type Tour []int

// Population is a fixed-size set of tours, replaced wholesale each generation.
type Population []Tour

// FitnessRecord pairs a population index with its tour length.
// Records are ordered by Fitness ascending (see CompareFitness).
type FitnessRecord struct {
	ID      int
	Fitness float64
}

// ParentPair names two population members chosen to breed.
type ParentPair struct {
	First  int
	Second int
}

// Termination tells why a run stopped.
type Termination int

const (
	// TerminatedGenerations means the configured generation count was reached.
	TerminatedGenerations Termination = iota
	// TerminatedPlateau means the best fitness stopped improving.
	TerminatedPlateau
	// TerminatedTimeLimit means the wall-clock budget ran out.
	TerminatedTimeLimit
	// TerminatedCancelled means the context was cancelled.
	TerminatedCancelled
)

func (t Termination) String() string {
	switch t {
	case TerminatedGenerations:
		return "generations"
	case TerminatedPlateau:
		return "plateau"
	case TerminatedTimeLimit:
		return "time-limit"
	case TerminatedCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("termination(%d)", int(t))
	}
}

// GenerationStats summarizes the fitness distribution of one generation.
type GenerationStats struct {
	Generation int
	BestID     int
	Best       float64
	Worst      float64
	Mean       float64
	Median     float64
	StdDev     float64
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the best tour seen across all generations (nil if none was evaluated).
	Tour Tour
	// Fitness is the length of Tour as computed by Evaluate.
	Fitness float64
	// Generations is the number of evaluated generations.
	Generations int
	// Evaluations counts tour evaluations, including the local-search re-check.
	Evaluations int
	// Reason is the termination policy that fired.
	Reason Termination
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// History holds one entry per generation when Options.KeepHistory is set.
	History []GenerationStats
}
