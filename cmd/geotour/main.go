// Command geotour solves a fixed-origin tour over a CSV location file with the
// genetic algorithm, optionally auditing the result and recording the run.
//
//	geotour -locations cities.csv -generations 500 -validate
//	geotour -config run.yaml -history runs.db -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/katalvlaran/geotour/config"
	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/ga"
	"github.com/katalvlaran/geotour/geo"
	"github.com/katalvlaran/geotour/history"
	"github.com/katalvlaran/geotour/validate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "geotour:", err)
		os.Exit(1)
	}
}

type flags struct {
	config      string
	locations   string
	seed        int64
	generations int
	population  int
	validate    bool
	history     string
	verbose     bool
	set         map[string]bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("geotour", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "YAML run configuration")
	fs.StringVar(&f.locations, "locations", "", "CSV file of name,latitude,longitude rows; the first row is the origin")
	fs.Int64Var(&f.seed, "seed", config.DefaultSeed, "PRNG seed")
	fs.IntVar(&f.generations, "generations", 0, "generation limit")
	fs.IntVar(&f.population, "population", 0, "population size")
	fs.BoolVar(&f.validate, "validate", false, "audit the best tour before printing it")
	fs.StringVar(&f.history, "history", "", "SQLite file to record the run in")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// overlay applies explicitly set flags on top of cfg.
func (f flags) overlay(cfg *config.Config) error {
	if f.set["locations"] {
		cfg.Locations = f.locations
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["generations"] {
		cfg.Generations = f.generations
	}
	if f.set["population"] {
		cfg.PopulationSize = f.population
	}
	if f.set["history"] {
		cfg.History.Path = f.history
	}
	if cfg.Locations == "" {
		return errors.New("no location file: set -locations or locations in the config")
	}

	return cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if f.config != "" {
		if cfg, err = config.Load(f.config); err != nil {
			return err
		}
	}
	if err = f.overlay(&cfg); err != nil {
		return err
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	locations, err := geo.LoadLocations(cfg.Locations)
	if err != nil {
		return err
	}
	logger.Info("locations loaded", zap.String("path", cfg.Locations), zap.Int("count", len(locations)))

	dist, closeDist, err := cfg.Distancer(logger.Named("distance"))
	if err != nil {
		return err
	}
	defer func() { _ = closeDist() }()

	opts := append(cfg.EngineOptions(), ga.WithLogger(logger.Named("ga")))
	res, err := ga.Solve(ctx, locations, dist, opts...)
	if err != nil && !(errors.Is(err, context.Canceled) && res.Tour != nil) {
		return err
	}
	if err != nil {
		logger.Warn("run interrupted, reporting best tour so far")
	}

	report(out, locations, res)
	if c, ok := dist.(*distance.Cached); ok {
		st := c.Stats()
		fmt.Fprintf(out, "distance cache: %s hits, %s misses\n",
			humanize.Comma(int64(st.Hits)), humanize.Comma(int64(st.Misses)))
	}

	if f.validate {
		v, err := validate.Validate(context.WithoutCancel(ctx), res.Tour, res.Fitness, locations, dist)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		if !v.Valid {
			return errors.New("best tour failed validation")
		}
	}

	if cfg.History.Path != "" {
		if err = record(context.WithoutCancel(ctx), out, cfg, locations, res); err != nil {
			return err
		}
		logger.Info("run recorded", zap.String("path", cfg.History.Path))
	}

	return nil
}

func report(out io.Writer, locations []geo.Location, res ga.Result) {
	names := res.Tour.Names(locations)
	names = append(names, names[0])
	fmt.Fprintf(out, "tour: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(out, "fitness: %s km\n", humanize.CommafWithDigits(res.Fitness, 4))
	fmt.Fprintf(out, "generations: %s (%s), evaluations: %s, elapsed: %s\n",
		humanize.Comma(int64(res.Generations)), res.Reason,
		humanize.Comma(int64(res.Evaluations)), res.Elapsed.Round(time.Millisecond))
}

func record(ctx context.Context, out io.Writer, cfg config.Config, locations []geo.Location, res ga.Result) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := history.NewRun(cfg, geo.Digest(locations), len(locations), res)
	if err != nil {
		return err
	}
	if err = store.Record(ctx, &r); err != nil {
		return err
	}

	best, err := store.Best(ctx, r.Digest)
	if err != nil {
		return err
	}
	if best.ID != r.ID {
		fmt.Fprintf(out, "best recorded run for this location set: %s km (run %d)\n",
			humanize.CommafWithDigits(best.Fitness, 4), best.ID)
	}

	return nil
}
