package simulation

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors returned by NewEngine and Run.
var (
	// ErrRankOutOfRange reports a selection rank outside [1, NumVariables].
	// The rank indexes into each sorted experiment, so an out-of-range
	// value can never produce a satellite value.
	ErrRankOutOfRange = errors.New("selection rank out of range")

	// ErrAlreadyRun reports a second Run on the same engine. The pipeline
	// is single-shot: generate, select, aggregate, in that order, once.
	ErrAlreadyRun = errors.New("engine has already run")
)

// Config carries the immutable parameters of one simulation run.
type Config struct {
	// NumVariables is the number of uniform draws per experiment.
	NumVariables int `json:"numVariables"`

	// NumExperiments is the number of experiment trials to generate.
	// Zero yields an empty run with zeroed metrics.
	NumExperiments int `json:"numExperiments"`

	// SelectionRank is the 1-based order statistic extracted from each
	// sorted experiment. Must lie within [1, NumVariables].
	SelectionRank int `json:"selectionRank"`

	// LowerBound and UpperBound delimit the uniform range. LowerBound is
	// expected to be below UpperBound; the engine does not enforce the
	// ordering, the config validator does.
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`

	// Technique selects the generation strategy. Names are matched
	// case-insensitively; unrecognized values fall back to plain uniform
	// sampling.
	Technique Technique `json:"technique"`
}

// DefaultConfig returns the reference parameter set: five variables per
// experiment, six experiments, fourth-smallest selection, bounds
// [1000, 5000], no variance reduction.
func DefaultConfig() Config {
	return Config{
		NumVariables:   5,
		NumExperiments: 6,
		SelectionRank:  4,
		LowerBound:     1000,
		UpperBound:     5000,
		Technique:      TechniqueNone,
	}
}

// Engine runs the three-stage pipeline over one Config.
//
// An Engine is single-use and not safe for concurrent use. Construction
// validates the config; Run does the actual work.
type Engine struct {
	cfg Config
	rng *rand.Rand
	ran bool
}

// Option customizes engine construction.
type Option func(*Engine)

// WithSeed fixes the random source seed so a run can be reproduced.
// A zero seed keeps the default time-based seeding.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = NewRand(seed)
	}
}

// WithRand hands the engine an explicit random source, for tests that
// need full control over the drawn values.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// NewEngine validates cfg and prepares a run.
//
// It fails fast on the one genuine failure mode, a selection rank outside
// [1, NumVariables], and on negative counts. Bound ordering is deliberately
// not checked here (see Config). The technique name is canonicalized at
// construction, so downstream stages only ever see known values.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.NumVariables < 0 {
		return nil, fmt.Errorf("numVariables cannot be negative, got %d", cfg.NumVariables)
	}
	if cfg.NumExperiments < 0 {
		return nil, fmt.Errorf("numExperiments cannot be negative, got %d", cfg.NumExperiments)
	}
	if cfg.SelectionRank < 1 || cfg.SelectionRank > cfg.NumVariables {
		return nil, fmt.Errorf("%w: rank %d with %d variables per experiment",
			ErrRankOutOfRange, cfg.SelectionRank, cfg.NumVariables)
	}

	cfg.Technique, _ = ParseTechnique(string(cfg.Technique))

	e := &Engine{cfg: cfg, rng: NewRand(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's canonicalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Result is the outcome of one completed run.
type Result struct {
	Config       Config       `json:"config"`
	Experiments  [][]float64  `json:"experiments"`
	Satellites   []float64    `json:"satellites"`
	Metrics      Metrics      `json:"metrics"`
	Distribution Distribution `json:"distribution"`
}

// Summary mirrors the reference output row: the satellite values followed
// by the three aggregate metrics rounded to two decimals.
type Summary struct {
	Satellites []float64 `json:"satellites"`
	Mean       float64   `json:"mean"`
	StdDev     float64   `json:"stdDev"`
	StdErr     float64   `json:"stdErr"`
}

// Run executes generate, select and aggregate, and returns the result.
// It can only be called once per engine; later calls return ErrAlreadyRun.
func (e *Engine) Run() (*Result, error) {
	if e.ran {
		return nil, ErrAlreadyRun
	}
	e.ran = true

	experiments := NewSampler(e.cfg.Technique).Sample(e.cfg, e.rng)
	satellites := selectSatellites(experiments, e.cfg.SelectionRank, e.cfg.Technique)

	return &Result{
		Config:       e.cfg,
		Experiments:  experiments,
		Satellites:   satellites,
		Metrics:      aggregate(satellites),
		Distribution: distribution(satellites),
	}, nil
}

// Results unpacks r in the reference accessor shape: the experiment
// matrix, the rounded summary, and the raw satellite values.
func (r *Result) Results() ([][]float64, Summary, []float64) {
	return r.Experiments, Summary{
		Satellites: r.Satellites,
		Mean:       round2(r.Metrics.Mean),
		StdDev:     round2(r.Metrics.StdDev),
		StdErr:     round2(r.Metrics.StdErr),
	}, r.Satellites
}
