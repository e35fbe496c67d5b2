package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// configSchema is the JSON Schema every simulation config must satisfy.
// Structural constraints (types, minimums, no stray keys) live here;
// cross-field rules live in Validate.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "variables": {"type": "integer", "minimum": 1},
    "experiments": {"type": "integer", "minimum": 0},
    "rank": {"type": "integer", "minimum": 1},
    "lowerBound": {"type": "number"},
    "upperBound": {"type": "number"},
    "technique": {"type": "string"},
    "seed": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`

// LoadConfig reads a YAML simulation config from path, checks it against
// the embedded schema, applies defaults and validates it.
func LoadConfig(path string) (*SimulationConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses raw YAML bytes into a validated SimulationConfig.
func ParseConfig(data []byte) (*SimulationConfig, error) {
	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := checkSchema(document); err != nil {
		return nil, err
	}

	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkSchema validates the decoded document against configSchema.
func checkSchema(document any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.schema.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}
	schema, err := compiler.Compile("config.schema.json")
	if err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}

	// The schema validator only understands JSON types, so the YAML
	// document is round-tripped through JSON first.
	normalized, err := normalizeJSON(document)
	if err != nil {
		return err
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}

func normalizeJSON(document any) (any, error) {
	buf, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("error normalizing config: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(buf, &normalized); err != nil {
		return nil, fmt.Errorf("error normalizing config: %w", err)
	}
	return normalized, nil
}
