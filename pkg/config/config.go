package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gapscan/gapscan/pkg/value"
)

// tabEscape is the literal two-character sequence users type for a tab.
const tabEscape = `\t`

// Load reads a YAML profile file over the defaults. The result is not yet
// validated: callers apply their flag overrides first, then call Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Validate resolves and checks a configuration: delimiter escapes are
// translated, the output delimiter inherits the input one, and the format,
// relation, and gap threshold are parsed. Any failure here is a startup
// error, reported before processing begins.
func Validate(cfg *Config) error {
	if cfg.Delimiter == tabEscape {
		cfg.Delimiter = "\t"
	}

	if cfg.Index < 1 {
		return fmt.Errorf("index: must be >= 1, got %d", cfg.Index)
	}
	if cfg.Delimiter == "" && cfg.Index != 1 {
		return errors.New("supplied index and delimiter are incompatible")
	}

	format, err := value.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	cfg.resolvedFormat = format

	relation, err := value.ParseRelation(cfg.Relation)
	if err != nil {
		return fmt.Errorf("relation: %w", err)
	}
	cfg.resolvedRelation = relation

	// An explicitly empty gap is a usage error, not a request for the
	// default; ParseThreshold rejects it for both kinds.
	threshold, err := format.ParseThreshold(cfg.Gap)
	if err != nil {
		return fmt.Errorf("gap: %w", err)
	}
	cfg.resolvedThreshold = threshold

	switch cfg.Mode {
	case ModeDiff:
		if cfg.OutputDelimiter == tabEscape {
			cfg.OutputDelimiter = "\t"
		}
		if cfg.OutputDelimiter == "" {
			cfg.OutputDelimiter = cfg.Delimiter
		}
	case ModeFilter:
		// Filter mode echoes raw lines; no output delimiter applies.
	default:
		return fmt.Errorf("mode: invalid mode %q (use diff or filter)", cfg.Mode)
	}

	return nil
}
