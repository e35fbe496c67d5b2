package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

// executeCommand runs the root command with the given args and captures
// its combined output.
func executeCommand(args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunCommandJSON(t *testing.T) {
	out, err := executeCommand("run",
		"--variables", "3",
		"--experiments", "8",
		"--rank", "2",
		"--lower", "10",
		"--upper", "20",
		"--technique", "lhs",
		"--seed", "42",
		"--json",
	)
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}

	doc := strings.TrimSpace(out)
	if !gjson.Valid(doc) {
		t.Fatalf("Expected valid JSON output, got:\n%s", out)
	}
	if got := gjson.Get(doc, "config.numExperiments").Int(); got != 8 {
		t.Errorf("config.numExperiments = %d, want 8", got)
	}
	if got := gjson.Get(doc, "config.technique").String(); got != "muestreo estratificado (lhs)" {
		t.Errorf("config.technique = %q, want canonical lhs name", got)
	}
	if got := gjson.Get(doc, "satellites.#").Int(); got != 8 {
		t.Errorf("satellites length = %d, want 8", got)
	}
	mean := gjson.Get(doc, "metrics.mean").Float()
	if mean < 10 || mean > 20 {
		t.Errorf("metrics.mean = %f, want within [10, 20]", mean)
	}
}

func TestRunCommandReport(t *testing.T) {
	out, err := executeCommand("run",
		"--variables", "3",
		"--experiments", "4",
		"--rank", "2",
		"--lower", "10",
		"--upper", "20",
		"--technique", "none",
		"--seed", "1",
		"--json=false",
		"--no-color",
	)
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}

	for _, want := range []string{"Technique:", "Mean:", "Std Err:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}
}

func TestRunCommandRejectsBadRank(t *testing.T) {
	_, err := executeCommand("run",
		"--variables", "3",
		"--experiments", "4",
		"--rank", "9",
		"--lower", "10",
		"--upper", "20",
		"--technique", "none",
		"--seed", "1",
	)
	if err == nil {
		t.Fatal("Expected an error for rank greater than variables")
	}
	if !strings.Contains(err.Error(), "rank") {
		t.Errorf("Error %q does not mention the rank", err)
	}
}

func TestRunCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	yaml := `name: Config run
variables: 4
experiments: 6
rank: 3
lowerBound: 100
upperBound: 200
technique: antithetic
seed: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}

	out, err := executeCommand("run",
		"--config", path,
		"--json=false",
		"--no-color",
	)
	if err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}
	if !strings.Contains(out, "Config run") {
		t.Errorf("Report missing config name:\n%s", out)
	}
	if !strings.Contains(out, "variables antitéticas") {
		t.Errorf("Report missing canonical technique name:\n%s", out)
	}
}
