// Package app wires configuration, logging and the run modes together:
// the stdin multiplier (the default), the randomized self-test, and the
// interactive TUI.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/logging"
	"github.com/agbru/mulcalc/internal/tui"
	"github.com/agbru/mulcalc/internal/ui"
)

// Application represents the mulcalc application instance.
type Application struct {
	Config    config.AppConfig
	In        io.Reader
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the input stream the driver reads numerals from.
// Defaults to os.Stdin.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "mulcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "mulcalc")
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	if a.Config.SelfTest {
		return a.runSelfTest(ctx, out)
	}
	return a.runMultiply(ctx, out)
}

// runTUI launches the interactive terminal interface.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr apperrors.ConfigError
	return errors.As(err, &cfgErr)
}
