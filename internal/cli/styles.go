package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the batch summary printed on stderr.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dark grey
)

// Symbols for output.
const (
	checkMark = "✓"
	crossMark = "✗"
	arrow     = "→"
)

// formatProcessed returns a styled per-file success line.
func formatProcessed(in, out string) string {
	return fmt.Sprintf("%s %s %s %s",
		successStyle.Render(checkMark), in, mutedStyle.Render(arrow), out)
}

// formatFailed returns a styled per-file failure line.
func formatFailed(in string, err error) string {
	return fmt.Sprintf("%s %s: %v", errorStyle.Render(crossMark), in, err)
}
