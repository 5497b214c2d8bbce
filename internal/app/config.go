package app

import "errors"

// DefaultOutputPath is where the fixture is written when no path is given.
const DefaultOutputPath = "test.xml"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionPaths []string // .hcl, .yaml or .yml files and directories
	OutputPath      string
	Seed            int64

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults for optional fields.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.DefinitionPaths) == 0 {
		return nil, errors.New("DefinitionPaths is a required configuration field and cannot be empty")
	}
	for _, p := range cfg.DefinitionPaths {
		if p == "" {
			return nil, errors.New("definition path cannot be empty")
		}
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	return &cfg, nil
}
