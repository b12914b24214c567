// Package config loads the keypadchain command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/robokeys/complexity"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything the command needs to run a batch.
type Config struct {
	// Input is the path of the code file.
	Input string `yaml:"input"`
	// Scope is the chain cache scope.
	Scope int `yaml:"scope"`
	// ChainLengths lists the robot chain lengths to solve, one report part each.
	ChainLengths []int `yaml:"chain_lengths"`
	// Workers bounds goroutines per cache layer and per batch; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Output is "text" or "json".
	Output string `yaml:"output"`
	// Humanize adds thousands separators to text output.
	Humanize bool `yaml:"humanize"`
	// Verbose enables progress logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the two-part configuration: 2 robots, then 25.
func Default() *Config {
	return &Config{
		Scope:        complexity.DefaultScope,
		ChainLengths: []int{2, 25},
		Output:       "text",
	}
}

// Load reads a YAML file on top of Default.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Scope adequacy is left to complexity.New.
func (c *Config) Validate() error {
	if c.Scope < 1 {
		return fmt.Errorf("%w: scope %d", ErrInvalidConfig, c.Scope)
	}
	if len(c.ChainLengths) == 0 {
		return fmt.Errorf("%w: chain_lengths is empty", ErrInvalidConfig)
	}
	for _, n := range c.ChainLengths {
		if n < 0 {
			return fmt.Errorf("%w: chain length %d", ErrInvalidConfig, n)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	switch strings.ToLower(c.Output) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// String renders the effective settings on one line for logging.
func (c *Config) String() string {
	workers := "auto"
	if c.Workers > 0 {
		workers = fmt.Sprintf("%d", c.Workers)
	}
	return fmt.Sprintf("input=%q scope=%d chain_lengths=%v workers=%s output=%s",
		c.Input, c.Scope, c.ChainLengths, workers, c.Output)
}
