package savestate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"codepad/internal/tui/state"
)

// Record is everything a save persists.
type Record struct {
	Code       string
	Orient     state.Orientation
	ShowZones  int
	MidOffsetX int
	MidOffsetY int
}

// Wire is the stored form of a Record.
type Wire struct {
	Code       string `json:"code" yaml:"code"`
	Orient     string `json:"orient" yaml:"orient"`
	ShowZones  int    `json:"showZones" yaml:"showZones"`
	MidOffsetX int    `json:"midOffsetX" yaml:"midOffsetX"`
	MidOffsetY int    `json:"midOffsetY" yaml:"midOffsetY"`
}

// Extra properties are allowed and ignored.
const recordSchemaJSON = `{
  "type": "object",
  "required": ["code", "orient", "showZones", "midOffsetX", "midOffsetY"],
  "properties": {
    "code":       {"type": "string"},
    "orient":     {"type": "string"},
    "showZones":  {"type": "integer"},
    "midOffsetX": {"type": "integer"},
    "midOffsetY": {"type": "integer"}
  }
}`

var recordSchema = mustSchema(recordSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("savestate: bad record schema: %v", err))
	}
	return s
}

// Encode projects the persisted fields out of m.
func Encode(m state.Model) Record {
	return Record{
		Code:       m.Code,
		Orient:     m.Orient,
		ShowZones:  m.ShowZones,
		MidOffsetX: m.MidOffsetX,
		MidOffsetY: m.MidOffsetY,
	}
}

// Wire converts r to its stored form.
func (r Record) Wire() Wire {
	return Wire{
		Code:       r.Code,
		Orient:     r.Orient.String(),
		ShowZones:  r.ShowZones,
		MidOffsetX: r.MidOffsetX,
		MidOffsetY: r.MidOffsetY,
	}
}

// Marshal serializes r for the store.
func Marshal(r Record) (string, error) {
	data, err := json.Marshal(r.Wire())
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored payload.
func Decode(data string) (Record, error) {
	result, err := recordSchema.Validate(gojsonschema.NewStringLoader(data))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return Record{}, fmt.Errorf("%w: %s", ErrMalformedRecord, strings.Join(errs, "; "))
	}

	var w Wire
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	orient, ok := state.ParseOrientation(w.Orient)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedOrientation, w.Orient)
	}
	return Record{
		Code:       w.Code,
		Orient:     orient,
		ShowZones:  w.ShowZones,
		MidOffsetX: w.MidOffsetX,
		MidOffsetY: w.MidOffsetY,
	}, nil
}
