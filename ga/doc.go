// Package ga implements a genetic-algorithm solver for the fixed-origin
// geographic Travelling Salesman Problem.
//
// A Tour is a permutation of location indices [0..n-1] whose first element is
// always the origin 0; the return leg to the origin is implicit. Fitness is the
// cyclic tour length computed through a distance.Distancer; lower is better.
//
// Pipeline (one generation):
//
//	Evaluate → Select → Crossover → Mutate → Replace
//
// repeated until a termination policy fires:
//   - a fixed generation count (Options.Generations),
//   - a fitness plateau (Options.Plateau generations without improvement),
//   - a wall-clock budget (Options.TimeLimit),
//   - cancellation of the context, observed at generation boundaries.
//
// The best tour ever seen is tracked independently of the population; it is
// only injected back when Options.Elites > 0.
//
// Determinism: with a fixed Options.Seed and a deterministic Distancer the
// whole run is reproducible. Parallel evaluation (Options.Workers > 1) only
// changes scheduling, never the computed fitness values.
//
// Operators are pluggable through the Selector, Crossover and Mutator
// interfaces; TournamentSelector, RankSelector, OrderedCrossover,
// SwapMutation and InversionMutation are provided.
//
// Errors (sentinel, see types.go):
//   - ErrInvalidInput and its refinements (ErrNoLocations, ErrTourLength,
//     ErrNotPermutation, ErrNotOrigin, ErrBadOptions, ErrNilDistancer).
//   - distance.ErrUnavailable from the distance backend, propagated as-is.
package ga
