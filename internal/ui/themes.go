package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Dim is used for less prominent elements.
	Dim string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Primary: "\033[38;5;39m",  // Bright blue
		Success: "\033[38;5;82m",  // Bright green
		Warning: "\033[38;5;220m", // Yellow
		Error:   "\033[38;5;196m", // Red
		Dim:     "\033[38;5;245m", // Grey
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Primary: "\033[38;5;27m",  // Dark blue
		Success: "\033[38;5;28m",  // Dark green
		Warning: "\033[38;5;130m", // Orange
		Error:   "\033[38;5;124m", // Dark red
		Dim:     "\033[38;5;240m", // Dark grey
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the interactive view.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default TUI palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#5F87FF"),
		Accent:  lipgloss.Color("#87D7FF"),
		Success: lipgloss.Color("#9ECE6A"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme disables all TUI colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI theme matching the active CLI theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme from the environment. It respects the
// NO_COLOR environment variable (https://no-color.org/): any non-empty
// value disables colors.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// ColorPrimary returns the active theme's primary color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSuccess returns the active theme's success color code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the active theme's warning color code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the active theme's error color code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorDim returns the active theme's dim color code.
func ColorDim() string { return GetCurrentTheme().Dim }

// ColorReset returns the reset code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
