package state

// TagKind enumerates the status chips shown for the active session.
type TagKind int

const (
	// Stable ordering for display: Modified, Example, Scratch, Saves
	MODIFIED TagKind = iota
	EXAMPLE
	SCRATCH
	SAVES
)

// Tag represents a single status chip. Value is used for counters
// (the number of saves). Other tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
