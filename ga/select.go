package ga

import (
	"math/rand"
	"slices"
)

// Selector picks parent pairs from the fitness records of a generation.
// Lower fitness must be favoured, and a member may appear in several pairs.
// Returned indices are record IDs (population indices).
type Selector interface {
	Select(records []FitnessRecord, pairs int, r *rand.Rand) []ParentPair
}

// DefaultTournamentSize is used when TournamentSelector.Size < 1.
const DefaultTournamentSize = 3

// TournamentSelector samples Size records with replacement and keeps the
// fittest; each parent of a pair comes from its own tournament.
type TournamentSelector struct {
	Size int
}

// Select implements Selector.
func (ts TournamentSelector) Select(records []FitnessRecord, pairs int, r *rand.Rand) []ParentPair {
	if len(records) == 0 || pairs <= 0 {
		return nil
	}
	size := ts.Size
	if size < 1 {
		size = DefaultTournamentSize
	}

	out := make([]ParentPair, pairs)
	for p := range out {
		out[p] = ParentPair{
			First:  tournament(records, size, r),
			Second: tournament(records, size, r),
		}
	}

	return out
}

func tournament(records []FitnessRecord, size int, r *rand.Rand) int {
	winner := records[r.Intn(len(records))]
	var c FitnessRecord
	for k := 1; k < size; k++ {
		c = records[r.Intn(len(records))]
		if CompareFitness(c, winner) < 0 {
			winner = c
		}
	}

	return winner.ID
}

// RankSelector performs linear-ranking roulette selection: after sorting by
// fitness the member at rank k (0 = best) of n gets weight n-k.
type RankSelector struct{}

// Select implements Selector.
func (RankSelector) Select(records []FitnessRecord, pairs int, r *rand.Rand) []ParentPair {
	if len(records) == 0 || pairs <= 0 {
		return nil
	}
	ranked := slices.Clone(records)
	SortRecords(ranked)

	// cumulative weights n, n+(n-1), ..., n(n+1)/2
	var (
		n     = len(ranked)
		cum   = make([]int, n)
		total int
	)
	for k := range ranked {
		total += n - k
		cum[k] = total
	}
	spin := func() int {
		x := r.Intn(total)
		k, _ := slices.BinarySearch(cum, x+1)
		return ranked[k].ID
	}

	out := make([]ParentPair, pairs)
	for p := range out {
		out[p] = ParentPair{First: spin(), Second: spin()}
	}

	return out
}
