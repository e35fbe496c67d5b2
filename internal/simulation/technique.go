package simulation

import "strings"

// Technique identifies the generation strategy used to draw experiments.
type Technique string

const (
	// TechniqueNone draws every experiment independently from the uniform
	// distribution. No variance reduction.
	TechniqueNone Technique = "ninguna"

	// TechniqueAntithetic draws experiments in pairs, the second built from
	// the mirrored draws 1-u of the first.
	TechniqueAntithetic Technique = "variables antitéticas"

	// TechniqueLHS stratifies each dimension into one stratum per
	// experiment and places exactly one sample in each (Latin Hypercube
	// Sampling).
	TechniqueLHS Technique = "muestreo estratificado (lhs)"
)

// ParseTechnique resolves a technique name. Matching is case-insensitive
// and ignores surrounding whitespace; the short aliases "none",
// "antithetic" and "lhs" are accepted alongside the full names. An empty
// name resolves to TechniqueNone.
//
// The boolean reports whether the name was recognized. The engine ignores
// it and falls back to plain uniform sampling for unknown names; input
// surfaces that validate configuration should not.
func ParseTechnique(name string) (Technique, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ninguna", "none":
		return TechniqueNone, true
	case "variables antitéticas", "variables antiteticas", "antithetic":
		return TechniqueAntithetic, true
	case "muestreo estratificado (lhs)", "lhs":
		return TechniqueLHS, true
	default:
		return TechniqueNone, false
	}
}

// Valid reports whether t is one of the known techniques.
func (t Technique) Valid() bool {
	switch t {
	case TechniqueNone, TechniqueAntithetic, TechniqueLHS:
		return true
	default:
		return false
	}
}

// Techniques returns all known techniques, in documentation order.
func Techniques() []Technique {
	return []Technique{TechniqueNone, TechniqueAntithetic, TechniqueLHS}
}
