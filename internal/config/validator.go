package config

import (
	"fmt"
	"strings"

	"github.com/montesim/montesim/internal/simulation"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the cross-field rules the schema cannot express.
//
// The engine itself only rejects an out-of-range rank; every other rule
// here (bound ordering, known technique name) is enforced at this outer
// surface so a typo fails loudly instead of silently falling back to
// plain uniform sampling.
//
// Returns nil if valid, or a ValidationErrors containing all errors.
func (c *SimulationConfig) Validate() error {
	errs := &ValidationErrors{}

	if c.Variables < 1 {
		errs.Add("variables", "must be at least 1")
	}
	if c.Experiments < 0 {
		errs.Add("experiments", "cannot be negative")
	}

	if c.Rank < 1 {
		errs.Add("rank", "must be at least 1")
	} else if c.Variables >= 1 && c.Rank > c.Variables {
		errs.Add("rank", fmt.Sprintf("rank %d exceeds the %d variables per experiment", c.Rank, c.Variables))
	}

	if c.LowerBound >= c.UpperBound {
		errs.Add("lowerBound", "must be less than upperBound")
	}

	if _, known := simulation.ParseTechnique(c.Technique); !known {
		errs.Add("technique", fmt.Sprintf("unknown technique: %s", c.Technique))
	}

	if c.Seed < 0 {
		errs.Add("seed", "cannot be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
