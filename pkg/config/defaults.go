package config

import (
	"os"

	"github.com/gapscan/gapscan/pkg/value"
)

// Default values for configuration.
const (
	DefaultDelimiter = ","
	DefaultIndex     = 1
	DefaultFormat    = string(value.FormatUint)
	DefaultRelation  = string(value.RelationGT)
	DefaultComment   = "#"
)

// Environment variable names.
const (
	EnvComment = "GAPSCAN_COMMENT"
)

// DefaultConfig returns a configuration with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		Index:     DefaultIndex,
		Format:    DefaultFormat,
		Relation:  DefaultRelation,
		Gap:       value.DefaultGap,
		Comment:   DefaultComment,
		Mode:      ModeDiff,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if marker, ok := os.LookupEnv(EnvComment); ok {
		c.Comment = marker
	}
}
