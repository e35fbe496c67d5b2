package main

import (
	"fmt"
	"os"

	"github.com/montesim/montesim/internal/cli"
	"github.com/montesim/montesim/internal/output"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	if err := cli.Execute(); err != nil {
		noColor := !output.IsTerminal(os.Stderr)
		fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(noColor), err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}
