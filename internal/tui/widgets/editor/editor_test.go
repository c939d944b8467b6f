package editor

import (
	"strings"
	"testing"

	"codepad/internal/tui/state"
)

func TestViewHeader(t *testing.T) {
	out := NewEditor().View(state.Model{Mode: state.Mode{Kind: state.INSERT}, Orient: state.Horizontal}, "abc")
	if !strings.HasPrefix(out, "[INSERT]  Horizontal\n") || !strings.Contains(out, "abc") {
		t.Fatalf("unexpected view %q", out)
	}
}

func TestPreviewOffsetsAndZones(t *testing.T) {
	s := state.Model{Code: "line0\nline1\nline2\n", MidOffsetX: 4, MidOffsetY: 1, ShowZones: 1}
	out := NewEditor().Preview(s, 10, 0)
	if strings.Contains(out, "line0") {
		t.Fatalf("expected first line scrolled away: %q", out)
	}
	if !strings.Contains(out, "│ 1│ 1\n") || !strings.Contains(out, "│ 2│ 2\n") {
		t.Fatalf("expected clipped, zoned lines: %q", out)
	}
}
