package util

import (
	"codepad/internal/examples"
	"codepad/internal/tui/state"
)

// ComputeTags returns the status chips for s in a stable order:
//
//	Modified, Example, Scratch, Saves
//
// saved is the stored (or example) code for s.ExName; hasSaved is false when
// it is not known yet, in which case Modified is never reported.
func ComputeTags(s state.Model, saved string, hasSaved bool, catalog examples.Catalog) []state.Tag {
	tags := make([]state.Tag, 0, 4)
	if hasSaved && saved != s.Code {
		tags = append(tags, state.Tag{Kind: state.MODIFIED})
	}
	switch {
	case s.ExName == examples.Scratch:
		tags = append(tags, state.Tag{Kind: state.SCRATCH})
	case catalog.IsReserved(s.ExName):
		tags = append(tags, state.Tag{Kind: state.EXAMPLE})
	}
	tags = append(tags, state.Tag{Kind: state.SAVES, Value: len(s.LocalSaves)})
	return tags
}
