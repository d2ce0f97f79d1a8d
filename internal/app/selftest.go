package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/agbru/mulcalc/internal/cli"
	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/logging"
	"github.com/agbru/mulcalc/internal/selftest"
	"github.com/agbru/mulcalc/internal/server"
)

// runSelfTest cross-validates the multiplier against the reference
// implementation under a worker pool, with optional Prometheus metrics
// and a progress spinner.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	opts := selftest.Options{
		Trials:  a.Config.Trials,
		Workers: config.ResolveWorkers(a.Config),
		Seed:    a.Config.Seed,
	}

	if a.Config.MetricsAddr != "" {
		opts.Metrics = server.NewMetrics()
		go opts.Metrics.Serve(ctx, a.Config.MetricsAddr, a.Logger)
	}

	a.Logger.Info("self-test starting",
		logging.Int("trials", opts.Trials),
		logging.Int("workers", opts.Workers),
	)

	var progress chan int
	var displayWg sync.WaitGroup
	if !a.Config.Quiet {
		progress = make(chan int, opts.Workers*4)
		displayWg.Add(1)
		go cli.DisplayTrialProgress(&displayWg, progress, opts.Trials, out)
	}

	res, err := selftest.Run(ctx, opts, progress)
	displayWg.Wait()

	if err != nil && res.MismatchCount == 0 {
		a.Logger.Error("self-test aborted", err)
		return apperrors.ExitCode(err)
	}

	cli.DisplaySelfTestSummary(res.Trials, res.MismatchCount, res.Duration, out)
	for _, m := range res.Mismatches {
		fmt.Fprintf(out, "  %s * %s\n    got  %s\n    want %s\n", m.A, m.B, m.Got, m.Want)
	}

	return apperrors.ExitCode(err)
}
