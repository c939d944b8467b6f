package helpoverlay

import (
	"fmt"
	"strings"

	"codepad/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.Model) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Sessions", []string{"ctrl+s: save", "ctrl+a: save as", "ctrl+o: open / delete saves", "ctrl+l: refresh saves", "ctrl+x: clear all saves"}},
		{"View", []string{"ctrl+r: flip orientation", "ctrl+t: cycle zones", "h/j/k/l: pan (H/J/K/L fast)", "0: reset view", "ctrl+f: diff against saved copy"}},
		{"Editor", []string{"i: INSERT mode", "esc: CMD mode", "ctrl+y: copy code"}},
		{"Save as", []string{"enter: save", "tab: use suggested name", "esc: cancel"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", s.Mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	b.WriteString("\nany key: close   ctrl+c: quit\n")
	return b.String()
}
