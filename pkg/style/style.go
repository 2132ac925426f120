// Package style renders scan plans and execution reports for the
// terminal. Styling is dropped automatically when stdout is not a tty.
package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Indicators used in operation listings
const (
	SuccessIndicator = "✓"
	ErrorIndicator   = "✗"
	PendingIndicator = "·"
)

// Styles for the renderer
var (
	TitleStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	TargetStyle  = pterm.NewStyle(pterm.FgGreen)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
	WarnStyle    = pterm.NewStyle(pterm.FgYellow)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
)

// StdoutIsTerminal reports whether stdout is an interactive terminal
func StdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
