package editor

import (
	"fmt"
	"strings"

	"codepad/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the code buffer under a header with mode and layout.
func (Editor) View(s state.Model, buf string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]  %s\n", s.Mode.Kind, s.Orient)
	fmt.Fprintf(&b, "%s\n", buf)
	return b.String()
}

// Preview renders the output pane: code shifted by the view offsets with
// zone markers in the current ShowZones mode.
func (Editor) Preview(s state.Model, width, height int) string {
	var b strings.Builder
	b.WriteString("Preview\n")
	lines := strings.Split(strings.TrimRight(s.Code, "\n"), "\n")
	start := s.MidOffsetY
	if start < 0 {
		start = 0
	}
	if width <= 0 {
		width = 40
	}
	shown := 0
	for i := start; i < len(lines); i++ {
		if height > 0 && shown >= height {
			break
		}
		b.WriteString(zone(s.ShowZones, i) + clip(lines[i], width, s.MidOffsetX) + "\n")
		shown++
	}
	return b.String()
}

func zone(mode, line int) string {
	switch mode {
	case 1:
		return fmt.Sprintf("│%2d│ ", line)
	case 2:
		return fmt.Sprintf("█%2d█ ", line)
	default:
		return ""
	}
}

func clip(s string, width int, start int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start >= len(runes) {
		return ""
	}
	end := start + width
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
