package ga

import (
	"context"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/geo"
)

const tracerName = "github.com/katalvlaran/geotour/ga"

// Solve runs the genetic algorithm over locations (index 0 is the origin) and
// returns the best tour seen.
//
// State machine:
//
//	Initialize → { Evaluate → Select → Crossover → Mutate → Replace } → Terminate
//
// Contracts:
//   - len(locations) ≥ 1, otherwise ErrNoLocations.
//   - dist must be non-nil and deterministic; its failures abort the run and
//     are returned unchanged (no fallback value is ever substituted).
//   - Options are validated up front (ErrBadOptions).
//
// Cancellation is observed before each generation. A cancel that interrupts a
// generation's distance calls discards that generation only. Either way the
// run returns the best tour of the completed generations with
// Reason==TerminatedCancelled together with ctx.Err().
//
// Complexity: O(G·P·n) distance calls for G generations of P tours over n locations.
func Solve(ctx context.Context, locations []geo.Location, dist distance.Distancer, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	n := len(locations)
	if n == 0 {
		return Result{}, ErrNoLocations
	}
	if dist == nil {
		return Result{}, ErrNilDistancer
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}

	s := &solver{
		opts:      o,
		locations: locations,
		dist:      dist,
		rng:       rngFromSeed(o.Seed),
		tracer:    otel.Tracer(tracerName),
		log:       o.Logger,
		start:     time.Now(),
	}

	return s.run(ctx)
}

// solver carries the state owned by one Solve call.
type solver struct {
	opts      Options
	locations []geo.Location
	dist      distance.Distancer
	rng       *rand.Rand
	tracer    trace.Tracer
	log       *zap.Logger
	start     time.Time

	best Result
}

func (s *solver) run(ctx context.Context) (Result, error) {
	pop, err := initialize(s.opts.PopulationSize, len(s.locations), s.rng)
	if err != nil {
		return Result{}, err
	}

	s.best.Fitness = math.Inf(1)
	var (
		deadline time.Time
		stale    int
		records  []FitnessRecord
	)
	if s.opts.TimeLimit > 0 {
		deadline = s.start.Add(s.opts.TimeLimit)
	}

	for {
		if err = ctx.Err(); err != nil {
			return s.cancelled(err)
		}

		records, err = s.evaluate(ctx, pop)
		if err != nil {
			// a cancel inside the generation discards only that generation
			if cerr := ctx.Err(); cerr != nil {
				return s.cancelled(cerr)
			}
			return Result{}, err
		}
		SortRecords(records)

		if s.track(pop, records) {
			stale = 0
		} else {
			stale++
		}
		s.observe(records)

		if reason, done := s.terminated(stale, deadline); done {
			s.best.Reason = reason
			break
		}
		pop = s.breed(pop, records)
	}

	if s.opts.LocalSearch {
		if err = s.polish(ctx); err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return s.cancelled(cerr)
			}
			return Result{}, err
		}
	}

	res := s.finish()
	s.log.Info("ga run finished",
		zap.Stringer("reason", res.Reason),
		zap.Int("generations", res.Generations),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("fitness", res.Fitness),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// evaluate scores pop inside a per-generation span.
func (s *solver) evaluate(ctx context.Context, pop Population) ([]FitnessRecord, error) {
	ctx, span := s.tracer.Start(ctx, "ga.generation",
		trace.WithAttributes(
			attribute.Int("ga.generation", s.best.Generations),
			attribute.Int("ga.population", len(pop)),
		))
	defer span.End()

	records, err := EvaluatePopulation(ctx, pop, s.locations, s.dist, s.opts.Workers)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.best.Generations++
	s.best.Evaluations += len(pop)

	return records, nil
}

// track updates the all-time best from sorted records. It reports whether the
// best improved by more than PlateauEps.
func (s *solver) track(pop Population, sorted []FitnessRecord) bool {
	top := sorted[0]
	if top.Fitness >= s.best.Fitness {
		return false
	}
	improved := s.best.Tour == nil || s.best.Fitness-top.Fitness > s.opts.PlateauEps
	s.best.Tour = pop[top.ID].Clone()
	s.best.Fitness = top.Fitness

	return improved
}

func (s *solver) observe(sorted []FitnessRecord) {
	gs := generationStats(s.best.Generations-1, sorted)
	if s.opts.KeepHistory {
		s.best.History = append(s.best.History, gs)
	}
	if s.opts.OnGeneration != nil {
		s.opts.OnGeneration(gs)
	}
	s.log.Debug("ga generation",
		zap.Int("generation", gs.Generation),
		zap.Float64("best", gs.Best),
		zap.Float64("mean", gs.Mean),
		zap.Float64("best_ever", s.best.Fitness),
	)
}

func (s *solver) terminated(stale int, deadline time.Time) (Termination, bool) {
	switch {
	case s.opts.Generations > 0 && s.best.Generations >= s.opts.Generations:
		return TerminatedGenerations, true
	case s.opts.Plateau > 0 && stale >= s.opts.Plateau:
		return TerminatedPlateau, true
	case !deadline.IsZero() && !time.Now().Before(deadline):
		return TerminatedTimeLimit, true
	}

	return 0, false
}

// breed produces the next population of the same size from pop and its
// sorted records: elites first, then children of selected pairs.
func (s *solver) breed(pop Population, sorted []FitnessRecord) Population {
	size := len(pop)
	next := make(Population, 0, size)
	for k := 0; k < s.opts.Elites; k++ {
		next = append(next, pop[sorted[k].ID].Clone())
	}

	remaining := size - len(next)
	pairs := s.opts.Selector.Select(sorted, (remaining+1)/2, s.rng)

	var c1, c2 Tour
	for _, p := range pairs {
		if s.rng.Float64() < s.opts.CrossoverRate {
			c1, c2 = s.opts.Crossover.Cross(pop[p.First], pop[p.Second], s.rng)
		} else {
			c1, c2 = pop[p.First].Clone(), pop[p.Second].Clone()
		}
		s.opts.Mutator.Mutate(c1, s.opts.MutationRate, s.rng)
		next = append(next, c1)
		if len(next) == size {
			break
		}
		s.opts.Mutator.Mutate(c2, s.opts.MutationRate, s.rng)
		next = append(next, c2)
	}

	return next
}

// polish runs 2-opt on the best tour and keeps the result only if its
// re-evaluated fitness is lower.
func (s *solver) polish(ctx context.Context) error {
	if s.best.Tour == nil || len(s.best.Tour) < 4 {
		return nil
	}
	cand, err := TwoOpt(ctx, s.best.Tour, s.locations, s.dist, s.opts.TwoOptMaxIters)
	if err != nil {
		return err
	}
	f, err := Evaluate(ctx, cand, s.locations, s.dist)
	if err != nil {
		return err
	}
	s.best.Evaluations++
	if f < s.best.Fitness {
		s.log.Debug("2-opt improved best tour", zap.Float64("before", s.best.Fitness), zap.Float64("after", f))
		s.best.Tour, s.best.Fitness = cand, f
	}

	return nil
}

// cancelled ends the run with the best tour of the completed generations.
func (s *solver) cancelled(err error) (Result, error) {
	s.best.Reason = TerminatedCancelled
	s.log.Info("ga run cancelled", zap.Int("generations", s.best.Generations), zap.Error(err))

	return s.finish(), err
}

func (s *solver) finish() Result {
	res := s.best
	if res.Tour == nil {
		res.Fitness = 0
	}
	res.Elapsed = time.Since(s.start)

	return res
}
