package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/montesim/montesim/internal/config"
	"github.com/montesim/montesim/internal/output"
	"github.com/montesim/montesim/internal/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation and report its statistics",
	Long: `Run a Monte Carlo simulation and print the experiment table, the
aggregate metrics (mean, sample standard deviation, standard error) and
the satellite distribution.

Config file mode:
  montesim run --config sim.yaml

Flag mode:
  montesim run --variables 5 --experiments 1000 --rank 4 \
    --lower 1000 --upper 5000 --technique lhs --seed 42

When --config is given the simulation flags are ignored; --seed, --json,
--output and the display flags always apply.`,
	RunE: runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	seed, _ := cmd.Flags().GetInt64("seed")

	var cfg *config.SimulationConfig
	var err error

	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = buildConfigFromFlags(cmd)
		config.ApplyDefaults(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The --seed flag wins over the config file so a run can be replayed
	// without editing the file.
	if seed != 0 {
		cfg.Seed = seed
	}

	engine, err := simulation.NewEngine(cfg.ToEngine(), simulation.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}

	result, err := engine.Run()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput || outputPath != "" {
		return output.WriteJSON(w, result, outputPath)
	}

	if !output.IsTerminalWriter(w) {
		noColor = true
	}
	formatter := output.NewFormatter(w,
		output.WithNoColor(noColor),
		output.WithQuiet(quiet),
		output.WithVerbose(verbose),
	)
	formatter.PrintReport(cfg.Name, result)
	return nil
}

// buildConfigFromFlags assembles a SimulationConfig from the CLI flags.
func buildConfigFromFlags(cmd *cobra.Command) *config.SimulationConfig {
	variables, _ := cmd.Flags().GetInt("variables")
	experiments, _ := cmd.Flags().GetInt("experiments")
	rank, _ := cmd.Flags().GetInt("rank")
	lower, _ := cmd.Flags().GetFloat64("lower")
	upper, _ := cmd.Flags().GetFloat64("upper")
	technique, _ := cmd.Flags().GetString("technique")

	return &config.SimulationConfig{
		Variables:   variables,
		Experiments: experiments,
		Rank:        rank,
		LowerBound:  lower,
		UpperBound:  upper,
		Technique:   technique,
	}
}

func init() {
	// Simulation flags
	runCmd.Flags().Int("variables", 0, "Number of uniform draws per experiment (default 5)")
	runCmd.Flags().Int("experiments", 0, "Number of experiment trials (default 6)")
	runCmd.Flags().Int("rank", 0, "1-based order statistic to select from each experiment (default 4)")
	runCmd.Flags().Float64("lower", 0, "Lower bound of the uniform range (default 1000)")
	runCmd.Flags().Float64("upper", 0, "Upper bound of the uniform range (default 5000)")
	runCmd.Flags().String("technique", "", "Generation technique: none, antithetic or lhs (Spanish names also accepted)")
	runCmd.Flags().Int64("seed", 0, "Random seed for reproducible runs (0 seeds from the clock)")

	// Basic flags
	runCmd.Flags().StringP("config", "c", "", "YAML configuration file")
	runCmd.Flags().BoolP("verbose", "v", false, "Show the full experiment table")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress the experiment table, show only metrics")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")

	// Reporting flags
	runCmd.Flags().Bool("json", false, "Output the result as JSON")
	runCmd.Flags().String("output", "", "Write the JSON report to a file")
}
