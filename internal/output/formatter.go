// Package output formats simulation results for the terminal and for
// machine-readable JSON reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/montesim/montesim/internal/simulation"
)

// maxTableRows caps the experiment table in non-verbose mode so a large
// run doesn't scroll the summary off the screen.
const maxTableRows = 20

// Formatter renders simulation results to a writer.
type Formatter struct {
	w       io.Writer
	scheme  *ColorScheme
	quiet   bool
	verbose bool
}

// Option customizes a Formatter.
type Option func(*Formatter)

// WithNoColor disables colored output.
func WithNoColor(noColor bool) Option {
	return func(f *Formatter) {
		if noColor {
			f.scheme = NoColorScheme()
		}
	}
}

// WithQuiet suppresses the experiment table, leaving only the metrics.
func WithQuiet(quiet bool) Option {
	return func(f *Formatter) {
		f.quiet = quiet
	}
}

// WithVerbose prints the full experiment table regardless of size.
func WithVerbose(verbose bool) Option {
	return func(f *Formatter) {
		f.verbose = verbose
	}
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer, opts ...Option) *Formatter {
	f := &Formatter{
		w:      w,
		scheme: DefaultColorScheme(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PrintReport renders the full run report: header, experiment table,
// aggregate metrics and satellite distribution.
func (f *Formatter) PrintReport(name string, result *simulation.Result) {
	fmt.Fprintln(f.w, strings.Repeat("=", 60))
	if name == "" {
		name = "Monte Carlo simulation"
	}
	f.scheme.Header.Fprintf(f.w, " %s\n", name)
	fmt.Fprintln(f.w, strings.Repeat("=", 60))
	fmt.Fprintln(f.w)

	cfg := result.Config
	f.scheme.Label.Fprint(f.w, "Technique:    ")
	f.scheme.Technique.Fprintf(f.w, "%s\n", cfg.Technique)
	f.scheme.Label.Fprint(f.w, "Experiments:  ")
	fmt.Fprintf(f.w, "%d (variables: %d, rank: %d)\n", cfg.NumExperiments, cfg.NumVariables, cfg.SelectionRank)
	f.scheme.Label.Fprint(f.w, "Bounds:       ")
	fmt.Fprintf(f.w, "[%.2f, %.2f]\n", cfg.LowerBound, cfg.UpperBound)
	fmt.Fprintln(f.w)

	if !f.quiet {
		f.printExperiments(result)
	}
	f.printMetrics(result)
	f.printDistribution(result)
}

// printExperiments renders each experiment's sorted values with the
// satellite value appended. Antithetic rows share one satellite per pair,
// mirroring how the pairs collapse during selection.
func (f *Formatter) printExperiments(result *simulation.Result) {
	if len(result.Experiments) == 0 {
		return
	}

	fmt.Fprintln(f.w, sectionRule("Experiments"))

	f.scheme.Label.Fprintf(f.w, "  %4s", "#")
	for j := range result.Experiments[0] {
		f.scheme.Label.Fprintf(f.w, "  %10s", fmt.Sprintf("x%d", j+1))
	}
	f.scheme.Label.Fprintf(f.w, "  %10s\n", "satellite")

	rows := len(result.Experiments)
	truncated := 0
	if !f.verbose && rows > maxTableRows {
		truncated = rows - maxTableRows
		rows = maxTableRows
	}

	for i := 0; i < rows; i++ {
		sorted := append([]float64(nil), result.Experiments[i]...)
		sort.Float64s(sorted)

		fmt.Fprintf(f.w, "  %4d", i+1)
		for _, v := range sorted {
			fmt.Fprintf(f.w, "  %10.2f", v)
		}
		f.scheme.Satellite.Fprintf(f.w, "  %10.2f\n", f.satelliteFor(result, i))
	}
	if truncated > 0 {
		fmt.Fprintf(f.w, "  ... %d more experiments (use --verbose to show all)\n", truncated)
	}
	fmt.Fprintln(f.w)
}

// satelliteFor maps an experiment row to its satellite value.
func (f *Formatter) satelliteFor(result *simulation.Result, row int) float64 {
	idx := row
	if result.Config.Technique == simulation.TechniqueAntithetic {
		idx = row / 2
	}
	if idx >= len(result.Satellites) {
		return 0
	}
	return result.Satellites[idx]
}

func (f *Formatter) printMetrics(result *simulation.Result) {
	_, summary, _ := result.Results()

	fmt.Fprintln(f.w, sectionRule("Metrics"))
	f.scheme.Label.Fprint(f.w, "  Mean:     ")
	f.scheme.Highlight.Fprintf(f.w, "%10.2f\n", summary.Mean)
	f.scheme.Label.Fprint(f.w, "  Std Dev:  ")
	fmt.Fprintf(f.w, "%10.2f\n", summary.StdDev)
	f.scheme.Label.Fprint(f.w, "  Std Err:  ")
	fmt.Fprintf(f.w, "%10.2f\n", summary.StdErr)
	fmt.Fprintln(f.w)
}

func (f *Formatter) printDistribution(result *simulation.Result) {
	if result.Metrics.Count == 0 {
		return
	}

	d := result.Distribution
	fmt.Fprintln(f.w, sectionRule("Satellite distribution"))
	fmt.Fprintf(f.w, "  Min: %.2f  Max: %.2f\n", d.Min, d.Max)
	fmt.Fprintf(f.w, "  P50: %.2f  P90: %.2f  P95: %.2f  P99: %.2f\n", d.P50, d.P90, d.P95, d.P99)
	fmt.Fprintln(f.w)
}

func sectionRule(title string) string {
	rule := 58 - len(title)
	if rule < 0 {
		rule = 0
	}
	return "─── " + title + " " + strings.Repeat("─", rule)
}

// FormatJSON serializes a result as indented JSON.
func FormatJSON(result *simulation.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// WriteJSON writes the JSON report to path, or to w when path is empty.
func WriteJSON(w io.Writer, result *simulation.Result, path string) error {
	data, err := FormatJSON(result)
	if err != nil {
		return fmt.Errorf("error marshaling result: %w", err)
	}

	if path == "" {
		fmt.Fprintln(w, string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing result to file: %w", err)
	}
	fmt.Fprintf(w, "Report: %s\n", path)
	return nil
}
