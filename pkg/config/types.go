// Package config provides configuration loading and resolution for gapscan.
package config

import (
	"github.com/gapscan/gapscan/pkg/value"
)

// Mode selects how detected gaps are rendered.
type Mode string

const (
	// ModeDiff emits one delimiter-joined line of field values per gap.
	ModeDiff Mode = "diff"

	// ModeFilter emits both offending raw lines per gap.
	ModeFilter Mode = "filter"
)

// Config is the scan configuration. It can be seeded from a YAML profile
// file, overridden by flags, and must be resolved by Validate before use.
type Config struct {
	// Delimiter separates input fields. The literal `\t` is translated to
	// a tab during validation; empty disables field separation.
	Delimiter string `yaml:"delimiter"`

	// Index is the 1-based field to parse and evaluate.
	Index int `yaml:"index"`

	// Format names the value format: uint, int, unix, unix_ms, rfc-3339.
	Format string `yaml:"format"`

	// Relation names the comparison: gt, ge, lt, le.
	Relation string `yaml:"relation"`

	// Gap is the raw threshold string, parsed according to Format.
	Gap string `yaml:"gap"`

	// Comment is the comment marker; empty disables comment detection.
	Comment string `yaml:"comment"`

	// Allow skips empty and invalid lines instead of halting.
	Allow bool `yaml:"allow"`

	// Mode is the output mode: diff or filter.
	Mode Mode `yaml:"mode"`

	// OutputDelimiter joins the two field values in diff mode. Empty
	// inherits Delimiter; the literal `\t` is translated to a tab.
	OutputDelimiter string `yaml:"output_delimiter"`

	// Resolved values (populated during validation).
	resolvedFormat    value.Format
	resolvedRelation  value.Relation
	resolvedThreshold value.Delta
}

// ResolvedFormat returns the validated format.
func (c *Config) ResolvedFormat() value.Format {
	return c.resolvedFormat
}

// ResolvedRelation returns the validated relation.
func (c *Config) ResolvedRelation() value.Relation {
	return c.resolvedRelation
}

// ResolvedThreshold returns the parsed gap threshold.
func (c *Config) ResolvedThreshold() value.Delta {
	return c.resolvedThreshold
}
