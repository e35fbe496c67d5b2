// Package config provides loading and validation for montesim simulation
// configuration files.
package config

import (
	"github.com/montesim/montesim/internal/simulation"
)

// SimulationConfig is the root configuration for a simulation run.
//
// Example YAML:
//
//	name: "Satellite MTTF"
//	description: "Five panels, failure at the fourth"
//	variables: 5
//	experiments: 6
//	rank: 4
//	lowerBound: 1000
//	upperBound: 5000
//	technique: "ninguna"
//	seed: 42
type SimulationConfig struct {
	// Name of the simulation (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description of the simulation (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Variables is the number of uniform draws per experiment
	Variables int `json:"variables,omitempty" yaml:"variables,omitempty"`

	// Experiments is the number of experiment trials to run
	Experiments int `json:"experiments,omitempty" yaml:"experiments,omitempty"`

	// Rank is the 1-based order statistic selected from each sorted
	// experiment; must lie within [1, variables]
	Rank int `json:"rank,omitempty" yaml:"rank,omitempty"`

	// LowerBound and UpperBound delimit the uniform range
	LowerBound float64 `json:"lowerBound,omitempty" yaml:"lowerBound,omitempty"`
	UpperBound float64 `json:"upperBound,omitempty" yaml:"upperBound,omitempty"`

	// Technique selects the generation strategy
	// Options: "ninguna", "variables antitéticas", "muestreo estratificado (lhs)"
	// (or the short aliases "none", "antithetic", "lhs")
	Technique string `json:"technique,omitempty" yaml:"technique,omitempty"`

	// Seed fixes the random source for reproducible runs; zero seeds
	// from the clock
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ApplyDefaults fills unset fields with the reference parameter set:
// five variables, six experiments, fourth-smallest selection, bounds
// [1000, 5000], no variance reduction.
func ApplyDefaults(cfg *SimulationConfig) {
	if cfg.Variables == 0 {
		cfg.Variables = 5
	}
	if cfg.Experiments == 0 {
		cfg.Experiments = 6
	}
	if cfg.Rank == 0 {
		cfg.Rank = 4
	}
	if cfg.LowerBound == 0 && cfg.UpperBound == 0 {
		cfg.LowerBound = 1000
		cfg.UpperBound = 5000
	}
	if cfg.Technique == "" {
		cfg.Technique = string(simulation.TechniqueNone)
	}
}

// ToEngine converts the file-level configuration into the engine's Config.
func (c *SimulationConfig) ToEngine() simulation.Config {
	technique, _ := simulation.ParseTechnique(c.Technique)
	return simulation.Config{
		NumVariables:   c.Variables,
		NumExperiments: c.Experiments,
		SelectionRank:  c.Rank,
		LowerBound:     c.LowerBound,
		UpperBound:     c.UpperBound,
		Technique:      technique,
	}
}
