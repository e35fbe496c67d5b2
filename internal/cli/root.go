package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "montesim",
	Short:   "Monte Carlo order-statistic simulator with variance reduction",
	Version: version,
	Long: `Montesim estimates the expected value of an order statistic over
uniformly distributed experiment vectors, optionally applying a
variance-reduction technique (antithetic variates or Latin Hypercube
Sampling).

The reference scenario is the satellite MTTF problem: each experiment
draws a lifetime for every solar panel, the failure time of the k-th
panel is the experiment's outcome, and the mean over many experiments
estimates the satellite's expected lifetime.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
