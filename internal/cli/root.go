// Package cli provides the command-line interface for gapscan.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gapscan/gapscan/internal/observability"
	"github.com/gapscan/gapscan/pkg/config"
	"github.com/gapscan/gapscan/pkg/output"
	"github.com/gapscan/gapscan/pkg/scan"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	ignoreSigpipe()

	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var lineErr *scan.LineError
		if errors.As(err, &lineErr) {
			return 1 // fatal data-line halt
		}
		return 2 // configuration or startup error
	}
	return 0
}

// ignoreSigpipe keeps writes to a closed stdout surfacing EPIPE to the
// writer. With the default disposition the runtime raises SIGPIPE for fds
// 1-2 and the process dies before the closed-consumer handling can run.
func ignoreSigpipe() {
	signal.Ignore(syscall.SIGPIPE)
}

// ScanOptions holds command-line options for the scan.
type ScanOptions struct {
	ConfigFile string
	Delimiter  string
	Index      int
	Format     string
	Comment    string
	Allow      bool
	Verbose    bool

	// Relation thresholds; at most one may be given.
	GT string
	GE string
	LT string
	LE string

	// Output mode
	Diff   string
	Filter bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &ScanOptions{}

	rootCmd := &cobra.Command{
		Use:   "gapscan [flags] FILE",
		Short: "Detect gaps between subsequent lines of delimited text",
		Long: `gapscan inspects delimited text data, looking for (time) gaps between
subsequent lines.

It parses one field per line as a number or timestamp, computes the
difference between consecutive valid values, and reports every pair whose
difference satisfies the configured relation and threshold.

FILE is a path to a delimited text file, or - for standard input.

Formats (-f):
  uint      Unsigned integer value.
  int       Signed integer value.
  unix      Non-leap seconds passed since the Unix Epoch.
  unix_ms   Similar to unix but in milliseconds.
  rfc-3339  Timestamp like "yyyy-mm-ddTHH:MM:SSZ".

Gap syntax follows the selected format:
  uint and int: a signed integer. [default: 1]
  unix, unix_ms, and rfc-3339: a signed integer followed by one
  character from [dhms], like "12h". [default: 1h]

Exit codes:
  0 - Scan completed (including an early stop on closed output)
  1 - Fatal data-line error
  2 - Configuration or startup error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Delimiter, "delimiter", "d", config.DefaultDelimiter,
		`Input delimiter; \t for tab, empty treats the whole line as one field`)
	flags.IntVarP(&opts.Index, "index", "i", config.DefaultIndex,
		"Index of the field to parse, starting from 1")
	flags.StringVarP(&opts.Format, "format", "f", config.DefaultFormat,
		"Field format (uint|int|unix|unix_ms|rfc-3339)")
	flags.StringVarP(&opts.Comment, "comment", "c", config.DefaultComment,
		"Comment marker, skipping lines it prefixes; empty disables")
	flags.BoolVarP(&opts.Allow, "allow", "a", false,
		"Skip empty or invalid lines instead of halting")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Log the resolved configuration and skipped lines to stderr")
	flags.StringVar(&opts.ConfigFile, "config", "",
		"YAML profile supplying defaults; explicit flags win")

	flags.StringVar(&opts.GT, "gt", "",
		"Report gaps greater than GAP (default relation)")
	flags.StringVar(&opts.GE, "ge", "",
		"Report gaps greater than or equal to GAP")
	flags.StringVar(&opts.LT, "lt", "",
		"Report gaps less than GAP")
	flags.StringVar(&opts.LE, "le", "",
		"Report gaps less than or equal to GAP")
	rootCmd.MarkFlagsMutuallyExclusive("gt", "ge", "lt", "le")

	flags.StringVarP(&opts.Diff, "diff", "D", "",
		`Diff mode (default): one line of field values per gap, joined by DELIM (bare -D uses ","; empty inherits the input delimiter)`)
	flags.Lookup("diff").NoOptDefVal = ","
	flags.BoolVarP(&opts.Filter, "filter", "F", false,
		"Filter mode: emit both offending raw lines per gap")
	rootCmd.MarkFlagsMutuallyExclusive("diff", "filter")

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	observability.InitLogger(opts.Verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	log.Debug().
		Str("delimiter", cfg.Delimiter).
		Int("index", cfg.Index).
		Str("format", cfg.Format).
		Str("relation", cfg.Relation).
		Str("gap", cfg.Gap).
		Str("comment", cfg.Comment).
		Bool("allow", cfg.Allow).
		Str("mode", string(cfg.Mode)).
		Str("file", args[0]).
		Msg("resolved configuration")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := scan.NewFileSource(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	engine := scan.NewEngine(scan.Params{
		Delimiter: cfg.Delimiter,
		Index:     cfg.Index,
		Format:    cfg.ResolvedFormat(),
		Relation:  cfg.ResolvedRelation(),
		Threshold: cfg.ResolvedThreshold(),
		Comment:   cfg.Comment,
		Allow:     cfg.Allow,
		Formatter: newFormatter(cfg),
	})

	return engine.Run(ctx, src, os.Stdout)
}

// resolveConfig layers explicit flags over the profile file (or defaults)
// and validates the result.
func resolveConfig(cmd *cobra.Command, opts *ScanOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.Delimiter
	}
	if flags.Changed("index") {
		cfg.Index = opts.Index
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("comment") {
		cfg.Comment = opts.Comment
	}
	if flags.Changed("allow") {
		cfg.Allow = opts.Allow
	}

	switch {
	case flags.Changed("gt"):
		cfg.Relation, cfg.Gap = "gt", opts.GT
	case flags.Changed("ge"):
		cfg.Relation, cfg.Gap = "ge", opts.GE
	case flags.Changed("lt"):
		cfg.Relation, cfg.Gap = "lt", opts.LT
	case flags.Changed("le"):
		cfg.Relation, cfg.Gap = "le", opts.LE
	}

	if opts.Filter {
		cfg.Mode = config.ModeFilter
	} else if flags.Changed("diff") {
		cfg.Mode = config.ModeDiff
		cfg.OutputDelimiter = opts.Diff
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFormatter(cfg *config.Config) output.Formatter {
	if cfg.Mode == config.ModeFilter {
		return output.NewFilterFormatter()
	}
	return output.NewDiffFormatter(cfg.OutputDelimiter)
}
