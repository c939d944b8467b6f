// Package savedialog renders the "save as" modal around a bubbles text input.
package savedialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codepad/internal/tui/util"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(util.DefaultPalette().Danger).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(util.DefaultPalette().Primary).Padding(0, 1)
)

// View renders the dialog. input is the text input's own view; hint is the
// validation message to show under it, if any.
func View(input, hint string, width int, noColor bool) string {
	var b strings.Builder
	b.WriteString(util.Render(titleStyle, "Save as", noColor) + "\n\n")
	b.WriteString(input + "\n")
	if hint != "" {
		b.WriteString(util.Render(hintStyle, hint, noColor) + "\n")
	}
	b.WriteString("\nenter: save   tab: use suggestion   esc: cancel")
	if noColor {
		return b.String() + "\n"
	}
	box := boxStyle
	if width > 4 {
		box = box.Width(width - 4)
	}
	return box.Render(b.String()) + "\n"
}
