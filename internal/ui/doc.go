// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and provides ANSI escape code
// functions for consistent styling across the CLI and the TUI.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
