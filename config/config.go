package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geotour/ga"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Selection policies.
const (
	SelectionTournament = "tournament"
	SelectionRank       = "rank"
)

// Mutation operators.
const (
	MutationSwap      = "swap"
	MutationInversion = "inversion"
)

// Distance backends.
const (
	BackendHaversine = "haversine"
	BackendGeoIndex  = "geoindex"
	BackendHTTP      = "http"
	BackendCommand   = "command"
)

// DefaultSeed matches the seed used by the reference runs.
const DefaultSeed = 42

// Config is a complete run configuration.
type Config struct {
	Locations string `yaml:"locations"`

	Seed           int64         `yaml:"seed"`
	PopulationSize int           `yaml:"population_size"`
	Generations    int           `yaml:"generations"`
	Plateau        int           `yaml:"plateau"`
	PlateauEps     float64       `yaml:"plateau_eps"`
	TimeLimit      time.Duration `yaml:"time_limit"`
	MutationRate   float64       `yaml:"mutation_rate"`
	CrossoverRate  float64       `yaml:"crossover_rate"`
	Elites         int           `yaml:"elites"`
	Selection      string        `yaml:"selection"`
	TournamentSize int           `yaml:"tournament_size"`
	Mutation       string        `yaml:"mutation"`
	Workers        int           `yaml:"workers"`
	LocalSearch    bool          `yaml:"local_search"`
	TwoOptMaxIters int           `yaml:"two_opt_max_iters"`

	Distance Distance `yaml:"distance"`
	History  History  `yaml:"history"`
}

// Distance selects and decorates the distance backend.
type Distance struct {
	Backend string        `yaml:"backend"`
	URL     string        `yaml:"url"`
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args"`
	Timeout time.Duration `yaml:"timeout"`
	// CacheSize bounds the in-process LRU; 0 uses the default, negative disables it.
	CacheSize int   `yaml:"cache_size"`
	Redis     Redis `yaml:"redis"`
}

// Redis enables the shared cache when Addr is set.
type Redis struct {
	Addr   string        `yaml:"addr"`
	Prefix string        `yaml:"prefix"`
	TTL    time.Duration `yaml:"ttl"`
}

// History enables the run store when Path is set.
type History struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	o := ga.DefaultOptions()

	return Config{
		Seed:           DefaultSeed,
		PopulationSize: o.PopulationSize,
		Generations:    o.Generations,
		PlateauEps:     o.PlateauEps,
		MutationRate:   o.MutationRate,
		CrossoverRate:  o.CrossoverRate,
		Selection:      SelectionTournament,
		TournamentSize: ga.DefaultTournamentSize,
		Mutation:       MutationSwap,
		Workers:        o.Workers,
		Distance: Distance{
			Backend: BackendHaversine,
			Timeout: 5 * time.Second,
		},
	}
}

// Parse decodes YAML from r over Default and validates the result.
// An empty document yields Default().
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks the fields config owns. Engine parameters are checked again
// by ga.Solve.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 1:
		return invalid("population_size must be at least 1, got %d", c.PopulationSize)
	case c.Generations < 0 || c.Plateau < 0 || c.TimeLimit < 0:
		return invalid("generations, plateau and time_limit must not be negative")
	case c.Generations == 0 && c.Plateau == 0 && c.TimeLimit == 0:
		return invalid("one of generations, plateau or time_limit is required")
	case c.MutationRate < 0 || c.MutationRate > 1:
		return invalid("mutation_rate %g outside [0,1]", c.MutationRate)
	case c.CrossoverRate < 0 || c.CrossoverRate > 1:
		return invalid("crossover_rate %g outside [0,1]", c.CrossoverRate)
	case c.Elites < 0 || c.Elites > c.PopulationSize:
		return invalid("elites %d outside [0,%d]", c.Elites, c.PopulationSize)
	case c.Selection != SelectionTournament && c.Selection != SelectionRank:
		return invalid("unknown selection %q", c.Selection)
	case c.Mutation != MutationSwap && c.Mutation != MutationInversion:
		return invalid("unknown mutation %q", c.Mutation)
	case c.Distance.Timeout < 0 || c.Distance.Redis.TTL < 0:
		return invalid("distance timeouts must not be negative")
	}

	switch c.Distance.Backend {
	case BackendHaversine, BackendGeoIndex:
	case BackendHTTP:
		if c.Distance.URL == "" {
			return invalid("distance.url is required for the http backend")
		}
	case BackendCommand:
		if c.Distance.Command == "" {
			return invalid("distance.command is required for the command backend")
		}
	default:
		return invalid("unknown distance backend %q", c.Distance.Backend)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// EngineOptions translates c into ga options. The logger is not included.
func (c Config) EngineOptions() []ga.Option {
	var sel ga.Selector = ga.TournamentSelector{Size: c.TournamentSize}
	if c.Selection == SelectionRank {
		sel = ga.RankSelector{}
	}
	var mut ga.Mutator = ga.SwapMutation{}
	if c.Mutation == MutationInversion {
		mut = ga.InversionMutation{}
	}

	opts := []ga.Option{
		ga.WithPopulationSize(c.PopulationSize),
		ga.WithSeed(c.Seed),
		ga.WithGenerations(c.Generations),
		ga.WithPlateau(c.Plateau, c.PlateauEps),
		ga.WithTimeLimit(c.TimeLimit),
		ga.WithMutationRate(c.MutationRate),
		ga.WithCrossoverRate(c.CrossoverRate),
		ga.WithElites(c.Elites),
		ga.WithWorkers(c.Workers),
		ga.WithSelector(sel),
		ga.WithMutator(mut),
	}
	if c.LocalSearch {
		opts = append(opts, ga.WithLocalSearch(c.TwoOptMaxIters))
	}

	return opts
}
