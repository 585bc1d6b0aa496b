package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotour/config"
	"github.com/katalvlaran/geotour/distance"
	"github.com/katalvlaran/geotour/ga"
)

const sample = `
locations: data/cities.csv
seed: 7
population_size: 80
generations: 0
plateau: 25
plateau_eps: 0.001
time_limit: 90s
mutation_rate: 0.2
crossover_rate: 0.75
elites: 2
selection: rank
mutation: inversion
workers: 4
local_search: true
two_opt_max_iters: 100
distance:
  backend: http
  url: http://localhost:8080/distance
  timeout: 1500ms
  cache_size: 1024
  redis:
    addr: localhost:6379
    prefix: "t:"
    ttl: 24h
history:
  path: runs.db
`

func TestParse_Sample(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "data/cities.csv", cfg.Locations)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 80, cfg.PopulationSize)
	assert.Zero(t, cfg.Generations)
	assert.Equal(t, 25, cfg.Plateau)
	assert.Equal(t, 0.001, cfg.PlateauEps)
	assert.Equal(t, 90*time.Second, cfg.TimeLimit)
	assert.Equal(t, 2, cfg.Elites)
	assert.Equal(t, config.SelectionRank, cfg.Selection)
	assert.Equal(t, config.MutationInversion, cfg.Mutation)
	assert.True(t, cfg.LocalSearch)
	assert.Equal(t, 100, cfg.TwoOptMaxIters)
	assert.Equal(t, config.BackendHTTP, cfg.Distance.Backend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Distance.Timeout)
	assert.Equal(t, 1024, cfg.Distance.CacheSize)
	assert.Equal(t, "localhost:6379", cfg.Distance.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Distance.Redis.TTL)
	assert.Equal(t, "runs.db", cfg.History.Path)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Seed)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("generations: 10\n"))
	require.NoError(t, err)
	want := config.Default()
	want.Generations = 10
	assert.Equal(t, want, cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse(strings.NewReader("populaton_size: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "populaton_size")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"population":     func(c *config.Config) { c.PopulationSize = 0 },
		"negative gens":  func(c *config.Config) { c.Generations = -1 },
		"no termination": func(c *config.Config) { c.Generations = 0 },
		"mutation rate":  func(c *config.Config) { c.MutationRate = 2 },
		"crossover rate": func(c *config.Config) { c.CrossoverRate = -1 },
		"elites":         func(c *config.Config) { c.Elites = c.PopulationSize + 1 },
		"selection":      func(c *config.Config) { c.Selection = "roulette" },
		"mutation":       func(c *config.Config) { c.Mutation = "scramble" },
		"backend":        func(c *config.Config) { c.Distance.Backend = "vincenty" },
		"http url":       func(c *config.Config) { c.Distance.Backend = config.BackendHTTP },
		"command":        func(c *config.Config) { c.Distance.Backend = config.BackendCommand },
		"timeout":        func(c *config.Config) { c.Distance.Timeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	require.NoError(t, config.Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\nselection: rank\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, config.SelectionRank, cfg.Selection)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineOptions(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	o := ga.DefaultOptions()
	for _, fn := range cfg.EngineOptions() {
		fn(&o)
	}
	assert.Equal(t, 80, o.PopulationSize)
	assert.Equal(t, int64(7), o.Seed)
	assert.Equal(t, 25, o.Plateau)
	assert.Equal(t, 0.001, o.PlateauEps)
	assert.Equal(t, 90*time.Second, o.TimeLimit)
	assert.Equal(t, 0.2, o.MutationRate)
	assert.Equal(t, 0.75, o.CrossoverRate)
	assert.Equal(t, 2, o.Elites)
	assert.Equal(t, 4, o.Workers)
	assert.Equal(t, ga.RankSelector{}, o.Selector)
	assert.Equal(t, ga.InversionMutation{}, o.Mutator)
	assert.True(t, o.LocalSearch)
	assert.Equal(t, 100, o.TwoOptMaxIters)

	def := ga.DefaultOptions()
	for _, fn := range config.Default().EngineOptions() {
		fn(&def)
	}
	assert.Equal(t, ga.TournamentSelector{Size: ga.DefaultTournamentSize}, def.Selector)
	assert.Equal(t, ga.SwapMutation{}, def.Mutator)
	assert.False(t, def.LocalSearch)
}

func TestDistancer_Chain(t *testing.T) {
	cfg := config.Default()
	d, closeFn, err := cfg.Distancer(nil)
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.IsType(t, &distance.Cached{}, d)
	require.NoError(t, closeFn())

	cfg.Distance.CacheSize = -1
	cfg.Distance.Backend = config.BackendGeoIndex
	d, _, err = cfg.Distancer(nil)
	require.NoError(t, err)
	assert.IsType(t, distance.GeoIndex{}, d)

	cfg.Distance.Backend = config.BackendCommand
	cfg.Distance.Command = "haversine"
	d, _, err = cfg.Distancer(nil)
	require.NoError(t, err)
	assert.Equal(t, distance.Command{Path: "haversine"}, d)

	cfg.Distance.Backend = config.BackendHTTP
	cfg.Distance.URL = "http://localhost:1/distance"
	d, _, err = cfg.Distancer(nil)
	require.NoError(t, err)
	h, ok := d.(*distance.HTTP)
	require.True(t, ok)
	assert.Equal(t, cfg.Distance.URL, h.URL)
	assert.Equal(t, cfg.Distance.Timeout, h.Client.Timeout)
}

func TestDistancer_Redis(t *testing.T) {
	cfg := config.Default()
	cfg.Distance.CacheSize = -1
	cfg.Distance.Redis.Addr = "127.0.0.1:1"

	d, closeFn, err := cfg.Distancer(nil)
	require.NoError(t, err)
	assert.IsType(t, &distance.RedisCache{}, d)
	require.NoError(t, closeFn())
}

func TestDistancer_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Distance.Backend = "nope"
	_, closeFn, err := cfg.Distancer(nil)
	require.ErrorIs(t, err, config.ErrInvalid)
	require.NoError(t, closeFn())
}
