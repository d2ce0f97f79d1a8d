// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/mulcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the product (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the product itself.
	Quiet bool
	// Verbose enables timing details on stderr-side displays.
	Verbose bool
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// DisplayProduct writes the decimal product followed by a newline. This is
// the program's primary output and is emitted in every mode, quiet or not.
func DisplayProduct(product string, out io.Writer) {
	fmt.Fprintln(out, product)
}

// DisplayRunDetails writes a post-computation summary for verbose runs:
// digit counts of the operands and the product, and the multiply duration.
func DisplayRunDetails(aDigits, bDigits, productDigits int, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "%sOperands: %d and %d digits; product: %d digits.%s\n",
		ui.ColorDim(), aDigits, bDigits, productDigits, ui.ColorReset())
	fmt.Fprintf(out, "%sMultiplied in %s.%s\n",
		ui.ColorDim(), FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplaySelfTestSummary writes the outcome of a self-test run.
func DisplaySelfTestSummary(trials, mismatches int, duration time.Duration, out io.Writer) {
	if mismatches == 0 {
		fmt.Fprintf(out, "%sSelf-test passed:%s %d trials in %s.\n",
			ui.ColorSuccess(), ui.ColorReset(), trials, FormatExecutionDuration(duration))
		return
	}
	fmt.Fprintf(out, "%sSelf-test FAILED:%s %d of %d trials disagreed with the reference multiplier.\n",
		ui.ColorError(), ui.ColorReset(), mismatches, trials)
}

// WriteProductToFile writes the product to a file with a descriptive
// header. The directory is created if necessary.
func WriteProductToFile(product string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Digits: %d\n", len(product))
	fmt.Fprintf(file, "\n%s\n", product)
	return nil
}
