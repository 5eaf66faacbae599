package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no explicit path
// is given.
const DefaultFile = "minibasic.yaml"

// Config holds CLI defaults. Flags override whatever is set here.
type Config struct {
	Verbose  bool `yaml:"verbose"`
	NoColor  bool `yaml:"no_color"`
	MaxSteps int  `yaml:"max_steps"`
}

// Default returns the built-in configuration: quiet, colored, and a step
// bound large enough for any reasonable program but finite, so runaway
// GOTO cycles terminate.
func Default() Config {
	return Config{MaxSteps: 1_000_000}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
