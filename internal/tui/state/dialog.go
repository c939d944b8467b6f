package state

import (
	"errors"
	"fmt"
)

// ErrDialogState is matched by every DialogStateError.
var ErrDialogState = errors.New("dialog state violation")

// DialogStateError reports a confirm or cancel issued while no save-as dialog
// is open. It means the UI and the model disagree about the dialog; callers
// should log it and keep the model they had.
type DialogStateError struct {
	Op   string
	Mode Mode
}

func (e *DialogStateError) Error() string {
	return fmt.Sprintf("%s: %s called in mode %s", ErrDialogState, e.Op, e.Mode)
}

func (e *DialogStateError) Is(target error) bool { return target == ErrDialogState }

// RequestSaveAs opens the save-as dialog, remembering the current mode.
// A second request while the dialog is open changes nothing.
func RequestSaveAs(s Model) Model {
	if s.Mode.IsNaming() {
		return s
	}
	s.Mode = Naming(s.Mode)
	s.InputText = ""
	s.InputHint = ""
	return s
}

// ConfirmName closes the dialog and makes name the active save. A name that is
// new to the session is appended to LocalSaves; re-using a known name does not
// duplicate it.
func ConfirmName(s Model, name string) (Model, error) {
	prev, ok := s.Mode.Previous()
	if !ok {
		return s, &DialogStateError{Op: "confirm", Mode: s.Mode}
	}
	if name != s.ExName && !s.HasSave(name) {
		s.LocalSaves = append(append([]string(nil), s.LocalSaves...), name)
	}
	s.ExName = name
	s.Mode = prev
	s.InputText = ""
	s.InputHint = ""
	return s, nil
}

// CancelNaming closes the dialog without touching the save list or name.
func CancelNaming(s Model) (Model, error) {
	prev, ok := s.Mode.Previous()
	if !ok {
		return s, &DialogStateError{Op: "cancel", Mode: s.Mode}
	}
	s.Mode = prev
	s.InputText = ""
	s.InputHint = ""
	return s, nil
}
