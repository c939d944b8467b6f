package state

import "codepad/internal/examples"

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
	CMD EditorMode = iota
	INSERT
	// NAMING is the save-as dialog. It always carries the mode to restore.
	NAMING
)

func (k EditorMode) String() string {
	switch k {
	case INSERT:
		return "INSERT"
	case NAMING:
		return "NAMING"
	default:
		return "CMD"
	}
}

// Mode is the editor mode as seen by reducers and widgets.
type Mode struct {
	Kind EditorMode
	prev *Mode
}

// Naming returns the dialog mode that restores prev when it closes.
func Naming(prev Mode) Mode {
	p := prev
	return Mode{Kind: NAMING, prev: &p}
}

// IsNaming reports whether the save-as dialog is open.
func (m Mode) IsNaming() bool { return m.Kind == NAMING && m.prev != nil }

// Previous returns the mode a NAMING mode will restore.
func (m Mode) Previous() (Mode, bool) {
	if !m.IsNaming() {
		return Mode{}, false
	}
	return *m.prev, true
}

func (m Mode) String() string {
	if prev, ok := m.Previous(); ok {
		return "NAMING(" + prev.String() + ")"
	}
	return m.Kind.String()
}

// Orientation controls how the code and output panes are stacked.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ParseOrientation accepts only the exact tag strings produced by String.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "Vertical":
		return Vertical, true
	case "Horizontal":
		return Horizontal, true
	}
	return Vertical, false
}

// ZoneModes is the number of values ShowZones cycles through
// (0 off, 1 outline, 2 filled).
const ZoneModes = 3

// Model holds the editor state shared by the save-state subsystem, the status
// bar and the dialog.
type Model struct {
	// Persisted fields
	Code       string
	Orient     Orientation
	ShowZones  int
	MidOffsetX int
	MidOffsetY int

	// Mode & dialog
	Mode      Mode
	InputText string
	InputHint string
	Editing   bool
	StartUp   bool

	// Saves known to this session and the active save name
	LocalSaves []string
	ExName     string

	// Notices and ephemeral messages
	Notice string
}

// Sample returns the default model a fresh session, and every hydrated save,
// starts from.
func Sample() Model {
	return Model{
		Code:    examples.ScratchContent,
		Orient:  Vertical,
		Mode:    Mode{Kind: CMD},
		StartUp: true,
		ExName:  examples.Scratch,
	}
}

// HasSave reports whether name is in the cached save list.
func (m Model) HasSave(name string) bool {
	for _, s := range m.LocalSaves {
		if s == name {
			return true
		}
	}
	return false
}
