package cli

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 250 * time.Microsecond, "250µs"},
		{"milliseconds", 42 * time.Millisecond, "42ms"},
		{"seconds", 3 * time.Second, "3s"},
		{"sub-microsecond rounds down", 500 * time.Nanosecond, "0µs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestDisplayProduct(t *testing.T) {
	var sb strings.Builder
	DisplayProduct("56088", &sb)
	if sb.String() != "56088\n" {
		t.Errorf("output = %q, want %q", sb.String(), "56088\n")
	}
}

func TestWriteProductToFile(t *testing.T) {
	t.Run("no file configured is a no-op", func(t *testing.T) {
		if err := WriteProductToFile("1", time.Second, OutputConfig{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("writes header and product", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "product.txt")
		err := WriteProductToFile("56088", 3*time.Millisecond, OutputConfig{OutputFile: path})
		if err != nil {
			t.Fatalf("WriteProductToFile failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		content := string(data)
		if !strings.Contains(content, "# Digits: 5") {
			t.Errorf("missing digits header in %q", content)
		}
		if !strings.HasSuffix(content, "\n56088\n") {
			t.Errorf("product missing or malformed in %q", content)
		}
	})
}

// fakeSpinner records spinner interactions without terminal output.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() { f.mu.Lock(); f.started = true; f.mu.Unlock() }
func (f *fakeSpinner) Stop()  { f.mu.Lock(); f.stopped = true; f.mu.Unlock() }
func (f *fakeSpinner) UpdateSuffix(s string) {
	f.mu.Lock()
	f.suffixes = append(f.suffixes, s)
	f.mu.Unlock()
}

func TestDisplayTrialProgress(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = orig }()

	progress := make(chan int)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayTrialProgress(&wg, progress, 10, &strings.Builder{})

	progress <- 4
	progress <- 6
	close(progress)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Error("spinner should be started and stopped")
	}
	last := fake.suffixes[len(fake.suffixes)-1]
	if !strings.Contains(last, "10/10") {
		t.Errorf("final suffix = %q, want completion marker", last)
	}
}
