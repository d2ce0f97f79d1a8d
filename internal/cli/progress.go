package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal
// spinner, decoupling DisplayTrialProgress from a specific implementation
// so that tests can substitute a silent fake.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is replaceable in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayTrialProgress consumes completed-trial counts from progress and
// animates a spinner with a running percentage until the channel closes.
// It is meant to run in its own goroutine; wg is released on return.
func DisplayTrialProgress(wg *sync.WaitGroup, progress <-chan int, total int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" self-test 0/%d", total))
	sp.Start()
	defer sp.Stop()

	done := 0
	for n := range progress {
		done += n
		sp.UpdateSuffix(fmt.Sprintf(" self-test %d/%d (%.0f%%)", done, total, float64(done)/float64(total)*100))
	}
}
