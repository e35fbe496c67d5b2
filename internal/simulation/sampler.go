package simulation

import "math/rand"

// Sampler produces the experiment matrix for one run: NumExperiments rows
// of NumVariables values, each inside [LowerBound, UpperBound].
type Sampler interface {
	// Sample draws every experiment for the run, consuming entropy from rng.
	// A zero experiment count yields an empty matrix, never an error.
	Sample(cfg Config, rng *rand.Rand) [][]float64
}

// NewSampler returns the sampler implementing the given technique.
//
// Unrecognized techniques get the plain uniform sampler, mirroring
// ParseTechnique's lenient fallback.
func NewSampler(t Technique) Sampler {
	switch t {
	case TechniqueAntithetic:
		return antitheticSampler{}
	case TechniqueLHS:
		return lhsSampler{}
	default:
		return uniformSampler{}
	}
}

// uniformSampler draws every component independently from
// Uniform(LowerBound, UpperBound).
type uniformSampler struct{}

func (uniformSampler) Sample(cfg Config, rng *rand.Rand) [][]float64 {
	experiments := make([][]float64, 0, cfg.NumExperiments)
	for i := 0; i < cfg.NumExperiments; i++ {
		experiments = append(experiments, uniformExperiment(cfg, rng))
	}
	return experiments
}

func uniformExperiment(cfg Config, rng *rand.Rand) []float64 {
	experiment := make([]float64, cfg.NumVariables)
	for j := range experiment {
		experiment[j] = cfg.LowerBound + (cfg.UpperBound-cfg.LowerBound)*rng.Float64()
	}
	return experiment
}

// antitheticSampler draws experiments in pairs. The first of each pair
// comes from uniform draws u, the second from the mirrored draws 1-u, so
// the pair satisfies first[j] + second[j] = LowerBound + UpperBound for
// every component. Paired outputs are negatively correlated, which shrinks
// the variance of the averaged order statistics downstream.
//
// An odd experiment count gets one final unpaired plain-uniform draw.
type antitheticSampler struct{}

func (antitheticSampler) Sample(cfg Config, rng *rand.Rand) [][]float64 {
	experiments := make([][]float64, 0, cfg.NumExperiments)
	span := cfg.UpperBound - cfg.LowerBound

	for p := 0; p < cfg.NumExperiments/2; p++ {
		first := make([]float64, cfg.NumVariables)
		second := make([]float64, cfg.NumVariables)
		for j := 0; j < cfg.NumVariables; j++ {
			u := rng.Float64()
			first[j] = cfg.LowerBound + span*u
			second[j] = cfg.LowerBound + span*(1-u)
		}
		experiments = append(experiments, first, second)
	}

	if cfg.NumExperiments%2 == 1 {
		experiments = append(experiments, uniformExperiment(cfg, rng))
	}
	return experiments
}

// lhsSampler splits [LowerBound, UpperBound] into NumExperiments
// equal-width strata per dimension and places exactly one sample in each,
// at an independently shuffled stratum per dimension plus a uniform jitter
// inside the stratum.
type lhsSampler struct{}

func (lhsSampler) Sample(cfg Config, rng *rand.Rand) [][]float64 {
	n := cfg.NumExperiments
	experiments := make([][]float64, n)
	for i := range experiments {
		experiments[i] = make([]float64, cfg.NumVariables)
	}
	if n == 0 {
		return experiments
	}

	span := cfg.UpperBound - cfg.LowerBound
	for j := 0; j < cfg.NumVariables; j++ {
		perm := rng.Perm(n)
		for i := 0; i < n; i++ {
			u := (float64(perm[i]) + rng.Float64()) / float64(n)
			experiments[i][j] = cfg.LowerBound + span*u
		}
	}
	return experiments
}
