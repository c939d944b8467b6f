package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"codepad/internal/tui/state"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = delLine.Underline(true)
	addChar = addLine.Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct {
	NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: noColor} }

// View compares the stored copy of the active save with the buffer. The
// layout follows the editor orientation: side-by-side when Horizontal.
func (v DiffView) View(s state.Model, saved, current string, width int) string {
	if saved == current {
		return "No changes\n"
	}
	if s.Orient == state.Horizontal {
		return v.sideBySide(saved, current, width)
	}
	return v.unified(saved, current)
}

func (v DiffView) render(style lipgloss.Style, s string) string {
	if v.NoColor {
		return s
	}
	return style.Render(s)
}

// unified runs a line-mode diff and prints each hunk line with a +/- marker.
func (v DiffView) unified(saved, current string) string {
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(saved, current)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString("SAVED vs BUFFER (Unified)\n")
	for _, df := range diffs {
		for _, l := range splitLines(df.Text) {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(v.render(delLine, "- "+l) + "\n")
			case dmp.DiffInsert:
				sb.WriteString(v.render(addLine, "+ "+l) + "\n")
			default:
				sb.WriteString("  " + v.render(faint, l) + "\n")
			}
		}
	}
	return sb.String()
}

// sideBySide pairs lines by index with char-level spans on changed pairs.
func (v DiffView) sideBySide(saved, current string, width int) string {
	const sep = " │ "
	left := strings.Split(saved, "\n")
	right := strings.Split(current, "\n")
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	colWidth := 40
	if width > 0 {
		colWidth = (width - len(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}

	var sb strings.Builder
	sb.WriteString(pad("SAVED", colWidth) + sep + "BUFFER\n")
	for i := 0; i < max; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if l == r {
			fmt.Fprintf(&sb, "%s%s%s\n", pad(v.render(faint, l), colWidth), sep, v.render(faint, r))
			continue
		}
		d := dmp.New()
		diffs := d.DiffMain(l, r, false)
		d.DiffCleanupSemantic(diffs)
		var lbuf, rbuf strings.Builder
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				lbuf.WriteString(v.render(delChar, df.Text))
			case dmp.DiffInsert:
				rbuf.WriteString(v.render(addChar, df.Text))
			case dmp.DiffEqual:
				lbuf.WriteString(v.render(delLine, df.Text))
				rbuf.WriteString(v.render(addLine, df.Text))
			}
		}
		fmt.Fprintf(&sb, "%s%s%s\n", pad(lbuf.String(), colWidth), sep, rbuf.String())
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
