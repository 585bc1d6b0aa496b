package ga

import "github.com/montanaflynn/stats"

// generationStats summarizes sorted records (best first) of generation gen.
func generationStats(gen int, sorted []FitnessRecord) GenerationStats {
	data := make(stats.Float64Data, len(sorted))
	for i, r := range sorted {
		data[i] = r.Fitness
	}

	gs := GenerationStats{
		Generation: gen,
		BestID:     sorted[0].ID,
		Best:       sorted[0].Fitness,
		Worst:      sorted[len(sorted)-1].Fitness,
	}
	// errors only signal empty input, excluded above
	gs.Mean, _ = stats.Mean(data)
	gs.Median, _ = stats.Median(data)
	gs.StdDev, _ = stats.StandardDeviation(data)

	return gs
}
