package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codepad/internal/examples"
	"codepad/internal/tui/util"
)

// Entry is one loadable session.
type Entry struct {
	Name    string
	Example bool
}

// Entries lists the examples first, in catalog order, then the user saves.
// A save that shadows an example name is not shown twice.
func Entries(c examples.Catalog, saves []string) []Entry {
	out := make([]Entry, 0, len(c)+len(saves))
	for _, ex := range c {
		out = append(out, Entry{Name: ex.Name, Example: true})
	}
	for _, s := range saves {
		if !c.IsReserved(s) {
			out = append(out, Entry{Name: s})
		}
	}
	return out
}

// Clamp keeps cursor inside entries.
func Clamp(cursor int, entries []Entry) int {
	if cursor >= len(entries) {
		cursor = len(entries) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Render draws the picker. current marks the active session.
func Render(entries []Entry, cursor int, current string, noColor bool) string {
	style := func(st lipgloss.Style, s string) string { return util.Render(st, s, noColor) }
	var b strings.Builder
	b.WriteString(style(titleStyle, "Open session") + "\n")
	for i, e := range entries {
		kind := ""
		if e.Example {
			kind = style(faintStyle, " (example)")
		}
		active := " "
		if e.Name == current {
			active = "*"
		}
		line := fmt.Sprintf("  %s %s%s", active, e.Name, kind)
		if i == cursor {
			line = style(selStyle, fmt.Sprintf("> %s %s", active, e.Name)) + kind
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: open   d: delete save   esc: back\n")
	return b.String()
}
