package statusbar

import (
	"fmt"
	"strings"

	"codepad/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

var zoneNames = [...]string{"off", "outline", "filled"}

// ZoneName describes a ShowZones value.
func ZoneName(z int) string {
	if z < 0 || z >= len(zoneNames) {
		return fmt.Sprintf("mode %d", z)
	}
	return zoneNames[z]
}

// View composes a concise status line reflecting key session state.
// chips is the pre-rendered tag chip string and may be empty.
func (StatusBar) View(s state.Model, chips string) string {
	mode := "[" + s.Mode.Kind.String() + "]"
	name := fmt.Sprintf("%q", s.ExName)
	layout := s.Orient.String()
	zones := "Zones: " + ZoneName(s.ShowZones)
	pos := fmt.Sprintf("X:%d Y:%d", s.MidOffsetX, s.MidOffsetY)

	parts := []string{mode, name, layout, zones, pos}
	if chips != "" {
		parts = append(parts, chips)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
