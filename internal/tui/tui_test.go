package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"codepad/internal/examples"
	"codepad/internal/savestate"
	"codepad/internal/store"
	"codepad/internal/tui/state"
)

func newTestModel(t *testing.T) (model, *store.MemStore) {
	t.Helper()
	st := store.NewMem()
	s := savestate.New(st, examples.Default(), zerolog.Nop())
	m := newModel(Options{Sessions: s, Logger: zerolog.Nop(), NoColor: true})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model), st
}

// step sends msg and then runs the returned command once, feeding its
// message back in, the way the bubbletea loop would for a single operation.
func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	if cmd == nil {
		return m
	}
	out := cmd()
	if out == nil {
		return m
	}
	if _, isBatch := out.(tea.BatchMsg); isBatch {
		return m
	}
	next, _ = m.Update(out)
	return next.(model)
}

func typeText(m model, s string) model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(model)
}

func TestSaveAsFlow(t *testing.T) {
	m, st := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.st.Mode.IsNaming() {
		t.Fatalf("saving scratch should open the dialog, mode %s", m.st.Mode)
	}

	m = typeText(m, "demo")
	if m.st.InputText != "demo" {
		t.Fatalf("expected input mirrored into model, got %q", m.st.InputText)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.st.Mode.IsNaming() || m.st.ExName != "demo" || !m.st.HasSave("demo") {
		t.Fatalf("unexpected model after commit: %+v", m.st)
	}
	if _, err := st.Get(context.Background(), "demo"); err != nil {
		t.Fatalf("expected save in store: %v", err)
	}
}

func TestSaveAsRejectsExampleName(t *testing.T) {
	m, st := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = typeText(m, "Hello")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.st.Mode.IsNaming() {
		t.Fatalf("dialog should stay open after a rejected name")
	}
	if m.st.InputHint != savestate.InvalidNameHint || m.name.Value() != "" {
		t.Fatalf("expected cleared input with hint, got %q / %q", m.name.Value(), m.st.InputHint)
	}
	if !strings.Contains(m.View(), savestate.InvalidNameHint) {
		t.Fatalf("hint should be rendered")
	}
	keys, _ := st.ListKeys(context.Background())
	if len(keys) != 0 {
		t.Fatalf("nothing should be written, got %v", keys)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.st.Mode.Kind != state.CMD || m.st.ExName != examples.Scratch {
		t.Fatalf("cancel should restore CMD and keep scratch, got %+v", m.st)
	}
}

func TestCommitOutsideDialogIsLoggedNotApplied(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(savestate.NameCommitted{Name: "ghost"})
	m = next.(model)
	if m.st.ExName != examples.Scratch || m.st.HasSave("ghost") {
		t.Fatalf("violation must not change the model: %+v", m.st)
	}
	if !strings.Contains(m.st.Notice, "out of sync") {
		t.Fatalf("expected a notice, got %q", m.st.Notice)
	}
}

func TestInsertModeEditsBuffer(t *testing.T) {
	m, _ := newTestModel(t)
	// the focus command only starts the cursor blink, so it is not run
	m = typeText(m, "i")
	if m.st.Mode.Kind != state.INSERT {
		t.Fatalf("expected INSERT mode")
	}
	m = typeText(m, "s")
	if !strings.Contains(m.st.Code, "s") {
		t.Fatalf("expected typed code in model, got %q", m.st.Code)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.st.Mode.Kind != state.CMD {
		t.Fatalf("expected CMD mode after esc")
	}
}

func TestPickerLoadsExample(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.picking {
		t.Fatalf("expected picker open")
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.picking || m.st.ExName != "Hello" {
		t.Fatalf("expected Hello loaded, got %q", m.st.ExName)
	}
	if m.editor.Value() != m.st.Code {
		t.Fatalf("editor should show loaded code")
	}
}

func TestSaveAsIgnoresEnterAndEscWhileWriting(t *testing.T) {
	m, st := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = typeText(m, "demo")

	next, write := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if write == nil {
		t.Fatalf("expected a write command")
	}
	next, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if again != nil {
		t.Fatalf("second enter must not issue another write")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if !m.st.Mode.IsNaming() {
		t.Fatalf("esc must not close the dialog while the write is pending")
	}

	next, _ = m.Update(write())
	m = next.(model)
	if strings.Contains(m.st.Notice, "out of sync") {
		t.Fatalf("unexpected dialog violation: %q", m.st.Notice)
	}
	if m.st.Mode.IsNaming() || m.committing || m.st.ExName != "demo" || !m.st.HasSave("demo") {
		t.Fatalf("unexpected model after commit: %+v", m.st)
	}
	if _, err := st.Get(context.Background(), "demo"); err != nil {
		t.Fatalf("expected save in store: %v", err)
	}
}

func TestSaveAsWriteFailureKeepsDialogUsable(t *testing.T) {
	m, st := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = typeText(m, "demo")
	st.FailWith(errors.New("disk full"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.st.Mode.IsNaming() || m.committing {
		t.Fatalf("dialog should stay open and accept input, committing=%v mode=%s", m.committing, m.st.Mode)
	}
	if !strings.HasPrefix(m.st.Notice, "!") {
		t.Fatalf("expected failure notice, got %q", m.st.Notice)
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.st.Mode.Kind != state.CMD {
		t.Fatalf("esc should close the dialog after a failure, mode %s", m.st.Mode)
	}
}

func TestLoadResultKeepsOpenDialog(t *testing.T) {
	m, _ := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = typeText(m, "mine")

	next, _ := m.Update(savestate.Loaded{Name: "other", Model: state.Sample()})
	m = next.(model)
	if !m.st.Mode.IsNaming() || m.st.InputText != "mine" {
		t.Fatalf("dialog should survive a load result, mode %s input %q", m.st.Mode, m.st.InputText)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if strings.Contains(m.st.Notice, "out of sync") || m.st.ExName != "mine" {
		t.Fatalf("commit after load should succeed: %+v", m.st)
	}
}

func TestBaselineUsesSessionContext(t *testing.T) {
	st := store.NewMem()
	data, err := savestate.Marshal(savestate.Encode(state.SetCode(state.Sample(), "x")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := st.Set(context.Background(), "a", data); err != nil {
		t.Fatalf("set: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := savestate.New(st, examples.Default(), zerolog.Nop()).WithContext(ctx)
	m := newModel(Options{Sessions: s, Logger: zerolog.Nop(), NoColor: true})
	m.st.ExName = "a"

	if got := m.fetchBaseline()().(baselineMsg); !got.ok || got.code != "x" {
		t.Fatalf("expected stored baseline, got %+v", got)
	}
	cancel()
	if got := m.fetchBaseline()().(baselineMsg); got.ok {
		t.Fatalf("cancelled session context should stop the read, got %+v", got)
	}
}

func TestZonesExampleNamesTheZoneKey(t *testing.T) {
	ex, ok := examples.Default().Lookup("Zones")
	if !ok {
		t.Fatalf("Zones example missing")
	}
	if !strings.Contains(ex.Content(), "ctrl+t") {
		t.Fatalf("Zones example should mention ctrl+t:\n%s", ex.Content())
	}
	m, _ := newTestModel(t)
	before := m.st.ShowZones
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.st.ShowZones == before {
		t.Fatalf("ctrl+t should cycle zones")
	}
}
