package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
// It does nothing while the save-as dialog is open.
func ToggleMode(s Model) Model {
	switch s.Mode.Kind {
	case CMD:
		s.Mode = Mode{Kind: INSERT}
		s.Editing = true
		s.Notice = "[INSERT]"
	case INSERT:
		s.Mode = Mode{Kind: CMD}
		s.Editing = false
		s.Notice = "[CMD]"
	}
	return s
}

// ToggleOrientation flips the pane layout.
func ToggleOrientation(s Model) Model {
	if s.Orient == Vertical {
		s.Orient = Horizontal
	} else {
		s.Orient = Vertical
	}
	return s
}

// CycleZones advances ShowZones through its modes, normalising out of range values.
func CycleZones(s Model) Model {
	z := s.ShowZones % ZoneModes
	if z < 0 {
		z = 0
	}
	s.ShowZones = (z + 1) % ZoneModes
	return s
}

// Pan moves the view offset. fast multiplies the step by 8.
func Pan(s Model, dx, dy int, fast bool) Model {
	delta := 1
	if fast {
		delta = 8
	}
	s.MidOffsetX += dx * delta
	s.MidOffsetY += dy * delta
	return s
}

// ResetView puts the view offsets back to the origin.
func ResetView(s Model) Model {
	s.MidOffsetX = 0
	s.MidOffsetY = 0
	return s
}

// SetCode replaces the buffer contents and ends the startup phase.
func SetCode(s Model, code string) Model {
	s.Code = code
	s.StartUp = false
	return s
}

// SetInput records the text typed into the save-name field.
func SetInput(s Model, text string) Model {
	s.InputText = text
	return s
}
