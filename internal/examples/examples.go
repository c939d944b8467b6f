// Package examples holds the built-in starter sessions. Their names are
// reserved: a user save can never overwrite one.
package examples

import "strings"

// Scratch is the name of the empty session used when nothing is saved.
const Scratch = "Scratch"

// ScratchContent is the buffer a scratch session starts with.
const ScratchContent = ""

// Example is a named starter session. Content is evaluated only when the
// example is selected.
type Example struct {
	Name    string
	Content func() string
}

// Catalog is an ordered, read-only list of examples.
type Catalog []Example

// Default returns the catalog shipped with codepad.
func Default() Catalog {
	return Catalog{
		{Name: Scratch, Content: func() string { return ScratchContent }},
		{Name: "Hello", Content: lines(
			`-- a single voice`,
			`note "c e g" # s "superpiano"`,
		)},
		{Name: "Drums", Content: lines(
			`-- four on the floor`,
			`s "bd*4, ~ sn ~ sn, hh*8"`,
		)},
		{Name: "Zones", Content: lines(
			`-- toggle zones with ctrl+t to see each layer`,
			`stack [`,
			`  s "bd sn",`,
			`  note "0 .. 7" # s "arpy"`,
			`]`,
		)},
		{Name: "Polyrhythm", Content: lines(
			`-- three against four`,
			`s "{bd bd bd, hh hh hh hh}"`,
		)},
	}
}

// Lookup returns the example with exactly this name.
func (c Catalog) Lookup(name string) (Example, bool) {
	for _, ex := range c {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// Names lists the reserved names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for _, ex := range c {
		out = append(out, ex.Name)
	}
	return out
}

// IsReserved reports whether name belongs to the catalog.
func (c Catalog) IsReserved(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

func lines(ls ...string) func() string {
	return func() string { return strings.Join(ls, "\n") + "\n" }
}
