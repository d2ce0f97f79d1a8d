package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/mulcalc/internal/bignum"
	"github.com/agbru/mulcalc/internal/cli"
	"github.com/agbru/mulcalc/internal/decimal"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/logging"
	"github.com/agbru/mulcalc/internal/sysmon"
)

// runMultiply is the driver: it reads two newline-terminated decimal
// numerals from the input stream, multiplies them, and writes the decimal
// product to out. Input is consumed one byte at a time and a blocked read
// simply waits; there is no timeout on this path.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	tracer := otel.Tracer("mulcalc/app")
	_, span := tracer.Start(ctx, "multiply")
	defer span.End()

	reader := bufio.NewReader(a.In)

	var x, y bignum.Operand
	parseStart := time.Now()
	if err := decimal.Parse(reader, x[:]); err != nil {
		return a.reportInputError(err)
	}
	if err := decimal.Parse(reader, y[:]); err != nil {
		return a.reportInputError(err)
	}
	parseDuration := time.Since(parseStart)

	mulStart := time.Now()
	p := bignum.Mul(&x, &y)
	mulDuration := time.Since(mulStart)

	product := decimal.Format(p[:])
	span.SetAttributes(attribute.Int("product_digits", len(product)))

	cli.DisplayProduct(product, out)

	heap := sysmon.SampleHeap()
	a.Logger.Debug("multiplication complete",
		logging.Int("product_digits", len(product)),
		logging.Float64("parse_seconds", parseDuration.Seconds()),
		logging.Float64("multiply_seconds", mulDuration.Seconds()),
		logging.Uint64("heap_alloc_bytes", heap.HeapAlloc),
	)
	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayRunDetails(
			len(decimal.Format(x[:])), len(decimal.Format(y[:])), len(product),
			mulDuration, a.ErrWriter)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.WriteProductToFile(product, mulDuration, outputCfg); err != nil {
		a.Logger.Error("failed to write output file", err,
			logging.String("path", a.Config.OutputFile))
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitSuccess
}

// reportInputError emits the diagnostic for an input failure and maps it
// to the documented exit code. The invalid-character path writes the
// offending raw byte; the exhausted-input path is silent.
func (a *Application) reportInputError(err error) int {
	var invalid apperrors.InvalidCharacterError
	if errors.As(err, &invalid) {
		// Emit the raw byte, not a re-encoded rune.
		fmt.Fprint(a.ErrWriter, "Invalid character: ")
		a.ErrWriter.Write([]byte{invalid.Byte, '\n'})
		return apperrors.ExitErrorInvalidInput
	}
	if errors.Is(err, apperrors.ErrInputExhausted) {
		return apperrors.ExitErrorInputExhausted
	}
	a.Logger.Error("reading input failed", err)
	return apperrors.ExitCode(err)
}
