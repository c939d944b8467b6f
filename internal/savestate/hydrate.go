package savestate

import "codepad/internal/tui/state"

// Partial is the set of model fields a save restores.
type Partial struct {
	Code       string
	Orient     state.Orientation
	ShowZones  int
	MidOffsetX int
	MidOffsetY int
}

func RecordToPartial(r Record) Partial {
	return Partial{
		Code:       r.Code,
		Orient:     r.Orient,
		ShowZones:  r.ShowZones,
		MidOffsetX: r.MidOffsetX,
		MidOffsetY: r.MidOffsetY,
	}
}

// MergeIntoModel writes p over base and overlays saves as the session's save
// list. Transient input state is always reset: input text and hint are
// cleared, editing-mode and the startup flag are switched off.
func MergeIntoModel(base state.Model, p Partial, saves []string) state.Model {
	base.Code = p.Code
	base.Orient = p.Orient
	base.ShowZones = p.ShowZones
	base.MidOffsetX = p.MidOffsetX
	base.MidOffsetY = p.MidOffsetY

	base.LocalSaves = append([]string(nil), saves...)

	base.InputText = ""
	base.InputHint = ""
	base.Editing = false
	base.StartUp = false
	return base
}

// Hydrate builds a full model from a decoded record on top of state.Sample.
func Hydrate(r Record, saves []string) state.Model {
	return MergeIntoModel(state.Sample(), RecordToPartial(r), saves)
}
