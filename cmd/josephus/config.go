package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvring/scenario"
)

const envVarPrefix = "JOSEPHUS"

// Config holds CLI defaults. Precedence, lowest first: built-in defaults,
// the YAML file named by JOSEPHUS_CONFIG_FILE, JOSEPHUS_* variables, flags.
type Config struct {
	LogLevel string        `envconfig:"LOG_LEVEL" yaml:"logLevel"`
	NoColor  bool          `envconfig:"NO_COLOR"  yaml:"noColor"`
	Start    int           `envconfig:"START"     yaml:"start"`
	Step     int           `envconfig:"STEP"      yaml:"step"`
	Mode     scenario.Mode `envconfig:"MODE"      yaml:"mode"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: zerolog.LevelInfoValue,
		Start:    1,
		Step:     3,
		Mode:     scenario.ModeRun,
	}
}

// LoadConfig resolves the configuration from file and environment.
func LoadConfig() (*Config, error) {
	c := defaultConfig()

	if configFile := os.Getenv(envVarPrefix + "_CONFIG_FILE"); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("unmarshaling config file: %w", err)
		}
	}

	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: logLevel / %s_LOG_LEVEL: %w", envVarPrefix, err)
	}
	if c.Start < 1 {
		return fmt.Errorf("invalid configuration: start / %s_START must be at least 1, got %d", envVarPrefix, c.Start)
	}
	if c.Step < 1 {
		return fmt.Errorf("invalid configuration: step / %s_STEP must be at least 1, got %d", envVarPrefix, c.Step)
	}
	switch c.Mode {
	case scenario.ModeRun, scenario.ModeOnce:
	default:
		return fmt.Errorf("invalid configuration: mode / %s_MODE %q: %w", envVarPrefix, c.Mode, scenario.ErrUnknownMode)
	}
	return nil
}
