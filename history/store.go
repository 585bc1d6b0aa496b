package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/katalvlaran/geotour/config"
	"github.com/katalvlaran/geotour/ga"
)

// Sentinel errors returned by the history package.
var (
	// ErrNotFound indicates that no run matches the query.
	ErrNotFound = errors.New("history: not found")

	// ErrNilRun indicates a nil run passed to Record.
	ErrNilRun = errors.New("history: nil run")
)

// Run is one finished solver run.
type Run struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	// Digest fingerprints the ordered location set (see geo.Digest).
	Digest        string `gorm:"index"`
	LocationCount int

	Seed           int64
	PopulationSize int
	MutationRate   float64
	CrossoverRate  float64
	Elites         int
	Selection      string
	Mutation       string
	LocalSearch    bool

	Generations int
	Evaluations int
	Fitness     float64 `gorm:"index"`
	// Tour is the best tour as a JSON array of indices.
	Tour     string
	Reason   string
	Duration time.Duration
}

// NewRun summarizes res, obtained with cfg over n locations whose digest is given.
func NewRun(cfg config.Config, digest string, n int, res ga.Result) (Run, error) {
	var r Run
	if err := copier.Copy(&r, &cfg); err != nil {
		return Run{}, fmt.Errorf("history: copy config: %w", err)
	}
	tour, err := json.Marshal([]int(res.Tour))
	if err != nil {
		return Run{}, fmt.Errorf("history: encode tour: %w", err)
	}

	r.Digest = digest
	r.LocationCount = n
	r.Generations = res.Generations
	r.Evaluations = res.Evaluations
	r.Fitness = res.Fitness
	r.Tour = string(tour)
	r.Reason = res.Reason.String()
	r.Duration = res.Elapsed

	return r, nil
}

// TourIndices decodes Tour.
func (r Run) TourIndices() (ga.Tour, error) {
	var t ga.Tour
	if err := json.Unmarshal([]byte(r.Tour), &t); err != nil {
		return nil, fmt.Errorf("history: decode tour: %w", err)
	}

	return t, nil
}

// Store persists runs through gorm.
type Store struct {
	DB *gorm.DB
}

// Open opens (creating if needed) the SQLite database at dsn and migrates the
// schema. ":memory:" gives a private in-memory store.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", dsn, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" a single database
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&Run{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	return &Store{DB: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Record inserts run and sets its ID and CreatedAt.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return ErrNilRun
	}
	if err := s.DB.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("history: record: %w", err)
	}

	return nil
}

// Best returns the lowest-fitness run recorded for digest.
func (s *Store) Best(ctx context.Context, digest string) (Run, error) {
	var r Run
	err := s.DB.WithContext(ctx).
		Where("digest = ?", digest).
		Order("fitness ASC").Order("id ASC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("history: best: %w", err)
	}

	return r, nil
}

// List returns up to limit runs, newest first. limit ≤ 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := s.DB.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}

	return runs, nil
}
