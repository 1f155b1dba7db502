package config

import (
	"fmt"

	"github.com/prettymuchbryce/reportbake/internal/pathutil"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration.
type Config struct {
	ReportDir string        `yaml:"report_dir"`
	Output    string        `yaml:"output"`
	Exclude   StringList    `yaml:"exclude"`
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultLoggingConfig returns the default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: "warn",
	}
}

// Load reads and parses a configuration file using the real filesystem.
func Load(path string) (*Config, error) {
	return LoadWithFs(path, afero.NewOsFs())
}

// LoadWithFs reads and parses a configuration file using the provided filesystem.
// An empty path returns the defaults.
func LoadWithFs(path string, afs afero.Fs) (*Config, error) {
	// Start with defaults
	config := Default()
	if path == "" {
		return config, nil
	}

	expanded := pathutil.ExpandTilde(path)

	data, err := afero.ReadFile(afs, expanded)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", expanded, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}

	config.ReportDir = pathutil.Resolve(config.ReportDir)
	config.Output = pathutil.Resolve(config.Output)

	return config, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.ReportDir == "" {
		return fmt.Errorf("report_dir must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
