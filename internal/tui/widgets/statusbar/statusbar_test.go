package statusbar

import (
	"strings"
	"testing"

	"codepad/internal/tui/state"
)

func TestViewShowsSessionState(t *testing.T) {
	s := state.Model{
		Mode:       state.Naming(state.Mode{Kind: state.INSERT}),
		ExName:     "mine",
		Orient:     state.Horizontal,
		ShowZones:  1,
		MidOffsetX: 4,
		Notice:     "Saved",
	}
	out := NewStatusBar().View(s, "[Saves 1]")
	for _, w := range []string{"[NAMING]", `"mine"`, "Horizontal", "Zones: outline", "X:4 Y:0", "[Saves 1]", "Saved"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in %q", w, out)
		}
	}
}

func TestZoneNameOutOfRange(t *testing.T) {
	if ZoneName(9) != "mode 9" {
		t.Fatalf("unexpected name %q", ZoneName(9))
	}
}
