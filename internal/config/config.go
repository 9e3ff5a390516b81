package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Defaults for optional fields.
const (
	DefaultDelimiter         = ","
	DefaultActivityDelimiter = ";"
)

// Config describes one assignment run.
type Config struct {
	Participants      string            `yaml:"participants"`
	Activities        string            `yaml:"activities"`
	Output            string            `yaml:"output"`
	Summary           string            `yaml:"summary,omitempty"`
	Seed              *uint64           `yaml:"seed,omitempty"`
	Delimiter         string            `yaml:"delimiter,omitempty"`
	Sheet             string            `yaml:"sheet,omitempty"`
	ActivityDelimiter string            `yaml:"activity_delimiter,omitempty"`
	Columns           map[string]string `yaml:"columns,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	ApplyDefaults(&cfg)

	return &cfg, nil
}

// ApplyDefaults fills in default values for optional fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Delimiter == "" {
		cfg.Delimiter = DefaultDelimiter
	}

	if cfg.ActivityDelimiter == "" {
		cfg.ActivityDelimiter = DefaultActivityDelimiter
	}
}

// Validate reports every missing or invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Participants == "" {
		errs = append(errs, errors.New("participants file is required"))
	}

	if c.Activities == "" {
		errs = append(errs, errors.New("activities file is required"))
	}

	if c.Output == "" {
		errs = append(errs, errors.New("output file is required"))
	}

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter %q must be a single character", c.Delimiter))
	}

	if c.ActivityDelimiter == "" {
		errs = append(errs, errors.New("activity delimiter must not be empty"))
	}

	return errors.Join(errs...)
}

// DelimiterRune returns the participant CSV delimiter.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// WriteFile writes a Config to the given path as YAML.
func WriteFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
