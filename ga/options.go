package ga

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Default option values.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 200
	DefaultMutationRate   = 0.05
	DefaultCrossoverRate  = 0.9
	DefaultPlateauEps     = 1e-9
)

// Options configures Solve.
//
// Termination: at least one of Generations, Plateau or TimeLimit must be
// positive; whichever fires first ends the run. Context cancellation always
// applies on top.
type Options struct {
	PopulationSize int   // tours per generation, ≥ 1
	Seed           int64 // PRNG seed; 0 selects a fixed default

	Generations int           // stop after this many generations (0 = no limit)
	Plateau     int           // stop after this many generations without improvement (0 = off)
	PlateauEps  float64       // minimum decrease of the best fitness that counts as improvement
	TimeLimit   time.Duration // wall-clock budget checked between generations (0 = none)

	MutationRate  float64 // per-child mutation probability in [0,1]
	CrossoverRate float64 // per-pair crossover probability in [0,1]; otherwise parents are copied
	Elites        int     // best tours copied unchanged into the next generation

	Workers int // concurrent tour evaluations; ≤ 1 evaluates sequentially

	Selector  Selector
	Crossover Crossover
	Mutator   Mutator

	LocalSearch    bool // polish the final best tour with 2-opt
	TwoOptMaxIters int  // accepted 2-opt moves before stopping (0 = until local optimum)

	KeepHistory  bool                  // record GenerationStats in Result.History
	OnGeneration func(GenerationStats) // called after every evaluated generation
	Logger       *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//   - PopulationSize 50, Seed 0, Generations 200, no plateau, no time limit,
//   - MutationRate 0.05 (swap), CrossoverRate 0.9 (ordered), no elites,
//   - tournament selection of size 3, sequential evaluation, history kept.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		PlateauEps:     DefaultPlateauEps,
		MutationRate:   DefaultMutationRate,
		CrossoverRate:  DefaultCrossoverRate,
		Workers:        1,
		Selector:       TournamentSelector{Size: DefaultTournamentSize},
		Crossover:      OrderedCrossover{},
		Mutator:        SwapMutation{},
		KeepHistory:    true,
		Logger:         zap.NewNop(),
	}
}

// WithOptions replaces the whole Options value.
func WithOptions(o Options) Option { return func(dst *Options) { *dst = o } }

// WithPopulationSize sets the number of tours per generation.
func WithPopulationSize(n int) Option { return func(o *Options) { o.PopulationSize = n } }

// WithSeed sets the PRNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithGenerations sets the generation limit (0 = unlimited).
func WithGenerations(n int) Option { return func(o *Options) { o.Generations = n } }

// WithPlateau stops the run after window generations whose best fitness did not
// improve on the best seen by more than eps.
func WithPlateau(window int, eps float64) Option {
	return func(o *Options) {
		o.Plateau = window
		o.PlateauEps = eps
	}
}

// WithTimeLimit sets a wall-clock budget checked at generation boundaries.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithMutationRate sets the per-child mutation probability.
func WithMutationRate(p float64) Option { return func(o *Options) { o.MutationRate = p } }

// WithCrossoverRate sets the per-pair crossover probability.
func WithCrossoverRate(p float64) Option { return func(o *Options) { o.CrossoverRate = p } }

// WithElites copies the k best tours of each generation into the next one.
func WithElites(k int) Option { return func(o *Options) { o.Elites = k } }

// WithWorkers evaluates up to n tours concurrently.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithSelector sets the parent selection policy.
func WithSelector(s Selector) Option { return func(o *Options) { o.Selector = s } }

// WithCrossover sets the crossover operator.
func WithCrossover(c Crossover) Option { return func(o *Options) { o.Crossover = c } }

// WithMutator sets the mutation operator.
func WithMutator(m Mutator) Option { return func(o *Options) { o.Mutator = m } }

// WithLocalSearch enables the final 2-opt polish, bounded by maxIters accepted moves.
func WithLocalSearch(maxIters int) Option {
	return func(o *Options) {
		o.LocalSearch = true
		o.TwoOptMaxIters = maxIters
	}
}

// WithHistory toggles per-generation statistics in the Result.
func WithHistory(keep bool) Option { return func(o *Options) { o.KeepHistory = keep } }

// WithGenerationHook registers fn to observe every generation.
func WithGenerationHook(fn func(GenerationStats)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// validateOptions checks internal consistency of o. Returns ErrBadOptions with detail.
func validateOptions(o Options) error {
	switch {
	case o.PopulationSize < 1:
		return fmt.Errorf("%w: population size %d < 1", ErrBadOptions, o.PopulationSize)
	case o.Generations < 0 || o.Plateau < 0 || o.TimeLimit < 0:
		return fmt.Errorf("%w: negative termination limit", ErrBadOptions)
	case o.Generations == 0 && o.Plateau == 0 && o.TimeLimit == 0:
		return fmt.Errorf("%w: no termination policy", ErrBadOptions)
	case o.PlateauEps < 0:
		return fmt.Errorf("%w: plateau eps %g < 0", ErrBadOptions, o.PlateauEps)
	case o.MutationRate < 0 || o.MutationRate > 1:
		return fmt.Errorf("%w: mutation rate %g outside [0,1]", ErrBadOptions, o.MutationRate)
	case o.CrossoverRate < 0 || o.CrossoverRate > 1:
		return fmt.Errorf("%w: crossover rate %g outside [0,1]", ErrBadOptions, o.CrossoverRate)
	case o.Elites < 0 || o.Elites > o.PopulationSize:
		return fmt.Errorf("%w: elites %d outside [0,%d]", ErrBadOptions, o.Elites, o.PopulationSize)
	case o.TwoOptMaxIters < 0:
		return fmt.Errorf("%w: 2-opt iteration bound %d < 0", ErrBadOptions, o.TwoOptMaxIters)
	case o.Selector == nil || o.Crossover == nil || o.Mutator == nil:
		return fmt.Errorf("%w: nil operator", ErrBadOptions)
	}

	return nil
}
