// Package selftest cross-validates the schoolbook multiplier against
// math/big, which the arithmetic core never uses and which therefore
// serves as an independent reference. Trials run concurrently across a
// worker pool; the core itself stays strictly single-threaded, each
// worker operating on its own buffers.
package selftest

import (
	"context"
	"math/big"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/mulcalc/internal/bignum"
	"github.com/agbru/mulcalc/internal/decimal"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/server"
)

// Options configures a self-test run.
type Options struct {
	// Trials is the total number of random trials.
	Trials int
	// Workers is the number of concurrent workers; must be >= 1.
	Workers int
	// Seed seeds the per-worker generators; 0 derives one from the clock.
	Seed int64
	// Metrics, when non-nil, receives per-trial observations.
	Metrics *server.Metrics
}

// Mismatch captures one disagreeing trial for diagnostics.
type Mismatch struct {
	// A and B are the operands in decimal.
	A, B string
	// Got is the schoolbook product, Want the reference product.
	Got, Want string
}

// Result summarizes a self-test run.
type Result struct {
	// Trials is the number of trials executed.
	Trials int
	// Mismatches holds up to maxRecordedMismatches disagreeing trials.
	Mismatches []Mismatch
	// MismatchCount is the total number of disagreements.
	MismatchCount int
	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// maxRecordedMismatches caps how many disagreeing trials are retained in
// the Result; the total count is still tracked.
const maxRecordedMismatches = 8

// Run executes opts.Trials random multiplications and compares each
// product word-for-word against the reference. Completed-trial counts are
// sent to progress if non-nil, and Run closes that channel when the run
// ends. A completed run with disagreements returns an
// apperrors.MismatchError; cancellation stops the run early with the
// context's error.
func Run(ctx context.Context, opts Options, progress chan<- int) (Result, error) {
	tracer := otel.Tracer("mulcalc/selftest")
	ctx, span := tracer.Start(ctx, "selftest")
	span.SetAttributes(
		attribute.Int("trials", opts.Trials),
		attribute.Int("workers", opts.Workers),
	)
	defer span.End()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	mismatchCh := make(chan Mismatch, opts.Workers)
	counts := make(chan int, opts.Workers)

	// Distribute trials across workers; the first worker absorbs the
	// remainder.
	per := opts.Trials / opts.Workers
	extra := opts.Trials % opts.Workers
	for w := 0; w < opts.Workers; w++ {
		n := per
		if w == 0 {
			n += extra
		}
		if n == 0 {
			continue
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))
		g.Go(func() error {
			return runWorker(ctx, n, rng, opts.Metrics, mismatchCh, counts)
		})
	}

	collectDone := make(chan Result)
	go func() {
		var res Result
		for {
			select {
			case m, ok := <-mismatchCh:
				if !ok {
					mismatchCh = nil
				} else {
					res.MismatchCount++
					if len(res.Mismatches) < maxRecordedMismatches {
						res.Mismatches = append(res.Mismatches, m)
					}
				}
			case n, ok := <-counts:
				if !ok {
					counts = nil
				} else {
					res.Trials += n
					if progress != nil {
						progress <- n
					}
				}
			}
			if mismatchCh == nil && counts == nil {
				collectDone <- res
				return
			}
		}
	}()

	err := g.Wait()
	close(mismatchCh)
	close(counts)
	res := <-collectDone
	if progress != nil {
		close(progress)
	}
	res.Duration = time.Since(start)

	if err != nil {
		return res, err
	}
	if res.MismatchCount > 0 {
		return res, apperrors.MismatchError{Trials: res.Trials, Mismatches: res.MismatchCount}
	}
	return res, nil
}

// runWorker executes n trials on its own operand buffers.
func runWorker(ctx context.Context, n int, rng *rand.Rand, metrics *server.Metrics, mismatches chan<- Mismatch, counts chan<- int) error {
	var a, b bignum.Operand
	const batch = 32

	pending := 0
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		randomOperand(rng, &a)
		randomOperand(rng, &b)

		start := time.Now()
		p := bignum.Mul(&a, &b)
		if metrics != nil {
			metrics.ObserveMultiplication(time.Since(start))
		}

		want := new(big.Int).Mul(operandToBig(&a), operandToBig(&b))
		if !productEquals(p, want) {
			if metrics != nil {
				metrics.IncrementMismatches()
			}
			mismatches <- Mismatch{
				A:    decimal.Format(a[:]),
				B:    decimal.Format(b[:]),
				Got:  decimal.Format(p[:]),
				Want: want.String(),
			}
		}

		pending++
		if pending == batch {
			counts <- pending
			pending = 0
		}
	}
	if pending > 0 {
		counts <- pending
	}
	return nil
}

// randomOperand fills op with a random value of random significant width,
// so short, medium and full-width operands are all exercised.
func randomOperand(rng *rand.Rand, op *bignum.Operand) {
	bignum.Clear(op[:])
	words := rng.Intn(bignum.OperandWords + 1)
	for i := 0; i < words; i++ {
		op[i] = rng.Uint64()
	}
}

// operandToBig interprets op as a big.Int.
func operandToBig(op *bignum.Operand) *big.Int {
	bw := make([]big.Word, len(op))
	for i, w := range op {
		bw[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bw)
}

// productEquals compares all 2N product words against the reference.
func productEquals(p *bignum.Product, want *big.Int) bool {
	wantBits := want.Bits()
	if len(wantBits) > len(p) {
		return false
	}
	for i := range p {
		var w bignum.Word
		if i < len(wantBits) {
			w = bignum.Word(wantBits[i])
		}
		if p[i] != w {
			return false
		}
	}
	return true
}
