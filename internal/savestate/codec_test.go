package savestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codepad/internal/tui/state"
)

func sampleModel() state.Model {
	m := state.Sample()
	m.Code = "s \"bd sn\""
	m.Orient = state.Horizontal
	m.ShowZones = 2
	m.MidOffsetX = -3
	m.MidOffsetY = 14
	m.InputText = "typing"
	m.InputHint = "hint"
	m.Editing = true
	m.LocalSaves = []string{"one", "two"}
	m.ExName = "one"
	return m
}

func TestRoundTripIsProjection(t *testing.T) {
	m := sampleModel()
	data, err := Marshal(Encode(m))
	require.NoError(t, err)

	rec, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Record{
		Code:       m.Code,
		Orient:     state.Horizontal,
		ShowZones:  2,
		MidOffsetX: -3,
		MidOffsetY: 14,
	}, rec)
	assert.NotContains(t, data, "typing")
	assert.NotContains(t, data, "two")
}

func TestWireFieldNames(t *testing.T) {
	data, err := Marshal(Record{Code: "x", Orient: state.Vertical})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"x","orient":"Vertical","showZones":0,"midOffsetX":0,"midOffsetY":0}`, data)
}

func TestDecodeIgnoresExtraFields(t *testing.T) {
	rec, err := Decode(`{"code":"a","orient":"Vertical","showZones":1,"midOffsetX":2,"midOffsetY":3,"theme":"dark"}`)
	require.NoError(t, err)
	assert.Equal(t, "a", rec.Code)
	assert.Equal(t, 3, rec.MidOffsetY)
}

func TestDecodeFailures(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"not json", `not json`, ErrMalformedRecord},
		{"array", `[]`, ErrMalformedRecord},
		{"missing field", `{"code":"a","orient":"Vertical","showZones":1,"midOffsetX":2}`, ErrMalformedRecord},
		{"mistyped int", `{"code":"a","orient":"Vertical","showZones":"1","midOffsetX":2,"midOffsetY":3}`, ErrMalformedRecord},
		{"fractional int", `{"code":"a","orient":"Vertical","showZones":1.5,"midOffsetX":2,"midOffsetY":3}`, ErrMalformedRecord},
		{"mistyped code", `{"code":7,"orient":"Vertical","showZones":1,"midOffsetX":2,"midOffsetY":3}`, ErrMalformedRecord},
		{"non-string orient", `{"code":"a","orient":1,"showZones":1,"midOffsetX":2,"midOffsetY":3}`, ErrMalformedRecord},
		{"unknown orient", `{"code":"a","orient":"Diagonal","showZones":1,"midOffsetX":2,"midOffsetY":3}`, ErrMalformedOrientation},
		{"lowercase orient", `{"code":"a","orient":"vertical","showZones":1,"midOffsetX":2,"midOffsetY":3}`, ErrMalformedOrientation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestHydrateOverlaysCallerSaves(t *testing.T) {
	rec := Encode(sampleModel())
	got := Hydrate(rec, []string{"fresh"})

	assert.Equal(t, rec.Code, got.Code)
	assert.Equal(t, state.Horizontal, got.Orient)
	assert.Equal(t, []string{"fresh"}, got.LocalSaves)
	assert.Empty(t, got.InputText)
	assert.Empty(t, got.InputHint)
	assert.False(t, got.Editing)
	assert.False(t, got.StartUp)
	assert.Equal(t, state.CMD, got.Mode.Kind)
}

func TestMergeIntoModelCopiesSaves(t *testing.T) {
	saves := []string{"a"}
	got := MergeIntoModel(state.Sample(), Partial{Code: "c"}, saves)
	saves[0] = "mutated"
	assert.Equal(t, []string{"a"}, got.LocalSaves)
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		name     string
		reserved []string
		want     bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{" \t ", nil, false},
		{"foo", []string{"foo"}, false},
		{"foo", nil, true},
		{"a b", nil, true},
		{"\n", nil, true},
		{"Foo", []string{"foo"}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidName(tc.name, tc.reserved), "IsValidName(%q, %v)", tc.name, tc.reserved)
	}
}
