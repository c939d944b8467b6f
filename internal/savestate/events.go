package savestate

import (
	"fmt"

	"codepad/internal/tui/state"
)

// Operation names carried by OpFailed and log lines.
const (
	OpSave   = "save"
	OpLoad   = "load"
	OpList   = "list"
	OpClear  = "clear"
	OpDelete = "delete"
)

// InvalidNameHint is shown in the save-name field after a rejected name.
const InvalidNameHint = "Invalid File Name"

// Effector is implemented by messages whose result is a plain model effect.
// SaveAsRequested and NameCommitted are dialog transitions and do not
// implement it.
type Effector interface {
	Effect() state.Effect
}

// SaveAsRequested asks the host to open the save-as dialog.
type SaveAsRequested struct{}

// NameCommitted reports that a dialog save reached the store; the host
// closes the dialog with state.ConfirmName.
type NameCommitted struct{ Name string }

// Saved reports a direct save under an existing name.
type Saved struct{ Name string }

func (e Saved) Effect() state.Effect {
	return state.Effect{Notice: fmt.Sprintf("Saved %q", e.Name)}
}

// InvalidName reports a save-as name rejected before reaching the store.
type InvalidName struct{ Name string }

func (InvalidName) Effect() state.Effect {
	return state.Effect{ClearInput: true, InputHint: InvalidNameHint}
}

// ExampleSelected reports a load that matched the built-in catalog.
type ExampleSelected struct {
	Name    string
	Content func() string
}

func (e ExampleSelected) Effect() state.Effect {
	code := ""
	if e.Content != nil {
		code = e.Content()
	}
	return state.Effect{Code: &code, ExName: e.Name, Notice: fmt.Sprintf("Example %q", e.Name)}
}

// Loaded carries the hydrated model of a stored save.
type Loaded struct {
	Name  string
	Model state.Model
}

func (e Loaded) Effect() state.Effect {
	m := e.Model
	return state.Effect{Replace: &m, Notice: fmt.Sprintf("Loaded %q", e.Name)}
}

// Listed carries the store's current save names.
type Listed struct{ Names []string }

func (e Listed) Effect() state.Effect {
	return state.Effect{ReplaceSaves: true, Saves: e.Names}
}

// Cleared reports an emptied store.
type Cleared struct{ Scratch string }

func (e Cleared) Effect() state.Effect {
	return state.Effect{ReplaceSaves: true, ExName: e.Scratch, Notice: "All saves cleared"}
}

// Deleted reports a removed save. The active name is left as is.
type Deleted struct{ Name string }

func (e Deleted) Effect() state.Effect {
	return state.Effect{RemoveSave: e.Name, Notice: fmt.Sprintf("Deleted %q", e.Name)}
}

// OpFailed reports a store or decode failure. The model only gains a notice.
type OpFailed struct {
	Op   string
	Name string
	Err  error
}

func (e OpFailed) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q failed: %v", e.Op, e.Name, e.Err)
}

func (e OpFailed) Unwrap() error { return e.Err }

func (e OpFailed) Effect() state.Effect {
	return state.Effect{Notice: "! " + e.Error()}
}
