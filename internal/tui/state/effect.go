package state

// Effect is a set of field changes produced by a finished session operation.
// Zero-valued fields leave the model alone.
type Effect struct {
	// Replace swaps in a whole model before the other fields apply.
	Replace *Model

	// ReplaceSaves overwrites LocalSaves with Saves (which may be empty).
	ReplaceSaves bool
	Saves        []string
	AddSave      string
	RemoveSave   string

	ExName string
	Code   *string

	ClearInput bool
	InputHint  string

	Notice string
}

// Apply is the single reducer for operation results.
func Apply(s Model, e Effect) Model {
	if e.Replace != nil {
		s = *e.Replace
	}
	if e.ReplaceSaves {
		s.LocalSaves = append([]string{}, e.Saves...)
	}
	if e.AddSave != "" && !s.HasSave(e.AddSave) {
		s.LocalSaves = append(append([]string(nil), s.LocalSaves...), e.AddSave)
	}
	if e.RemoveSave != "" {
		kept := make([]string, 0, len(s.LocalSaves))
		for _, n := range s.LocalSaves {
			if n != e.RemoveSave {
				kept = append(kept, n)
			}
		}
		s.LocalSaves = kept
	}
	if e.ExName != "" {
		s.ExName = e.ExName
	}
	if e.Code != nil {
		s = SetCode(s, *e.Code)
	}
	if e.ClearInput {
		s.InputText = ""
	}
	if e.InputHint != "" {
		s.InputHint = e.InputHint
	}
	if e.Notice != "" {
		s.Notice = e.Notice
	}
	return s
}
