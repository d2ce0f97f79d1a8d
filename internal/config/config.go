// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over MULCALC_-prefixed
// environment variables, which take priority over built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/mulcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "MULCALC_"

// Default configuration values.
const (
	DefaultTimeout = 5 * time.Minute
	DefaultTrials  = 1000
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Quiet suppresses everything except the product itself.
	Quiet bool
	// Verbose enables debug-level logging of parse and multiply timings.
	Verbose bool
	// Timeout bounds the whole run (relevant to self-test and TUI modes;
	// a blocked stdin read is not subject to it, matching the synchronous
	// byte-at-a-time input contract).
	Timeout time.Duration
	// OutputFile, when non-empty, receives a copy of the product with a
	// descriptive header.
	OutputFile string
	// TUI launches the interactive terminal interface.
	TUI bool
	// SelfTest runs randomized cross-validation against the reference
	// multiplier instead of reading operands from stdin.
	SelfTest bool
	// Trials is the number of self-test trials.
	Trials int
	// Workers is the self-test worker count; 0 selects a NumCPU-based
	// default.
	Workers int
	// Seed seeds the self-test generator; 0 derives one from the clock.
	Seed int64
	// MetricsAddr, when non-empty, serves Prometheus metrics on that
	// address for the duration of a self-test run.
	MetricsAddr string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags not explicitly set.
//
// Returns flag.ErrHelp when -h/--help was requested; any other error is a
// configuration error.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Timeout: DefaultTimeout,
		Trials:  DefaultTrials,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress everything except the product")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug-level logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Overall time limit for self-test and TUI modes")
	fs.StringVar(&cfg.OutputFile, "output", "", "Also write the product to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for -output")
	fs.BoolVar(&cfg.TUI, "tui", false, "Launch the interactive terminal interface")
	fs.BoolVar(&cfg.SelfTest, "selftest", false, "Cross-validate the multiplier against math/big")
	fs.IntVar(&cfg.Trials, "trials", DefaultTrials, "Number of self-test trials")
	fs.IntVar(&cfg.Workers, "workers", 0, "Self-test worker count (0 = automatic)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Self-test random seed (0 = from clock)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during self-test")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Reads two decimal numerals from standard input, one per line,\n")
		fmt.Fprintf(errWriter, "and writes their product in decimal to standard output.\n")
		fmt.Fprintf(errWriter, "Operands are fixed-width 8192-bit unsigned integers; wider input\n")
		fmt.Fprintf(errWriter, "is truncated.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects configurations the rest of the program assumes away.
func validate(cfg AppConfig) error {
	if cfg.Trials <= 0 {
		return apperrors.NewConfigError("trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Workers < 0 {
		return apperrors.NewConfigError("workers must be non-negative, got %d", cfg.Workers)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.TUI && cfg.SelfTest {
		return apperrors.NewConfigError("-tui and -selftest are mutually exclusive")
	}
	return nil
}
