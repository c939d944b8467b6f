package tagchips

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codepad/internal/tui/state"
	"codepad/internal/tui/util"
)

// View renders session tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	// Honor NO_COLOR env var in addition to explicit param
	if !noColor && os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.MODIFIED:
		return "Modified"
	case state.EXAMPLE:
		return "Example"
	case state.SCRATCH:
		return "Scratch"
	case state.SAVES:
		return fmt.Sprintf("Saves %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch t.Kind {
	case state.MODIFIED:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.EXAMPLE:
		return base.Background(p.Primary)
	case state.SCRATCH:
		return base.Background(p.Muted)
	case state.SAVES:
		return base.Background(p.Success)
	default:
		return base
	}
}
