package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"codepad/internal/savestate"
	"codepad/internal/tui/state"
	"codepad/internal/tui/util"
	"codepad/internal/tui/views/picker"
	"codepad/internal/tui/widgets/diff"
	"codepad/internal/tui/widgets/editor"
	"codepad/internal/tui/widgets/helpoverlay"
	"codepad/internal/tui/widgets/savedialog"
	"codepad/internal/tui/widgets/statusbar"
	"codepad/internal/tui/widgets/tagchips"
)

// Options configures the editor program.
type Options struct {
	Sessions *savestate.Sessions
	Logger   zerolog.Logger
	NoColor  bool
}

// Run starts the editor and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ===== Model =====

type model struct {
	st       state.Model
	sessions *savestate.Sessions
	log      zerolog.Logger
	noColor  bool

	editor     textarea.Model
	name       textinput.Model
	suggestion string
	// a save-as write is in flight; the dialog waits for its result
	committing bool

	// overlays
	picking      bool
	pickCursor   int
	confirmClear bool
	showHelp     bool
	showDiff     bool

	// stored code of the active save, for diff and the Modified chip
	baseline    string
	hasBaseline bool

	width  int
	height int
}

// baselineMsg carries the stored code of a save for comparison.
type baselineMsg struct {
	name string
	code string
	ok   bool
}

func newModel(opts Options) model {
	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.Placeholder = "-- type code here (i to insert)"

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 128

	st := state.Sample()
	ed.SetValue(st.Code)

	return model{
		st:       st,
		sessions: opts.Sessions,
		log:      opts.Logger,
		noColor:  util.NoColor(opts.NoColor),
		editor:   ed,
		name:     in,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.sessions.ListSaves(), m.fetchBaseline())
}

// Update applies key presses and session operation results.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case baselineMsg:
		if msg.name == m.st.ExName {
			m.baseline, m.hasBaseline = msg.code, msg.ok
		}
		return m, nil

	case savestate.SaveAsRequested:
		m.st = state.RequestSaveAs(m.st)
		cmd := m.openNameInput()
		return m, cmd

	case savestate.NameCommitted:
		m.committing = false
		st, err := state.ConfirmName(m.st, msg.Name)
		if err != nil {
			cmd := m.dialogViolation(err)
			return m, cmd
		}
		m.st = st
		m.st.Notice = fmt.Sprintf("Saved %q", msg.Name)
		cmd := m.closeNameInput()
		return m, tea.Batch(cmd, m.fetchBaseline())

	case savestate.Effector:
		mode, input := m.st.Mode, m.st.InputText
		m.st = state.Apply(m.st, msg.Effect())
		switch msg.(type) {
		case savestate.Loaded, savestate.ExampleSelected:
			// a load that lands while naming keeps the dialog open
			if mode.IsNaming() {
				m.st.Mode, m.st.InputText = mode, input
			}
			m.editor.SetValue(m.st.Code)
			return m, m.fetchBaseline()
		case savestate.Saved, savestate.Cleared:
			return m, m.fetchBaseline()
		case savestate.InvalidName:
			m.committing = false
			m.name.SetValue("")
		case savestate.OpFailed:
			m.committing = false
		case savestate.Deleted:
			m.pickCursor = picker.Clamp(m.pickCursor, m.entries())
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.st.Mode.IsNaming() {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.st.Mode.IsNaming():
		return m.keyNaming(msg)
	case m.confirmClear:
		m.confirmClear = false
		if strings.ToLower(k) == "y" {
			return m, m.sessions.ClearAll()
		}
		m.st.Notice = ""
		return m, nil
	case m.picking:
		return m.keyPicker(k)
	case m.showHelp:
		m.showHelp = false
		return m, nil
	}

	switch k {
	case "ctrl+s":
		m.syncCode()
		asNew := m.sessions.Catalog().IsReserved(m.st.ExName)
		return m, m.sessions.Save(m.st.ExName, asNew, m.st)
	case "ctrl+a":
		m.syncCode()
		return m, m.sessions.Save(m.st.ExName, true, m.st)
	case "ctrl+o":
		m.picking = true
		m.pickCursor = 0
		return m, m.sessions.ListSaves()
	case "ctrl+l":
		return m, m.sessions.ListSaves()
	case "ctrl+x":
		m.confirmClear = true
		m.st.Notice = "Clear all saves? (y/n)"
		return m, nil
	case "ctrl+f":
		m.showDiff = !m.showDiff
		return m, m.fetchBaseline()
	case "ctrl+y":
		m.syncCode()
		if err := clipboard.WriteAll(m.st.Code); err != nil {
			m.log.Warn().Err(err).Msg("clipboard write failed")
			m.st.Notice = "! clipboard unavailable"
		} else {
			m.st.Notice = "Copied code"
		}
		return m, nil
	case "ctrl+r":
		m.st = state.ToggleOrientation(m.st)
		m.layout()
		return m, nil
	case "ctrl+t":
		m.st = state.CycleZones(m.st)
		return m, nil
	case "alt+left":
		m.st = state.Pan(m.st, -1, 0, false)
		return m, nil
	case "alt+right":
		m.st = state.Pan(m.st, 1, 0, false)
		return m, nil
	case "alt+up":
		m.st = state.Pan(m.st, 0, -1, false)
		return m, nil
	case "alt+down":
		m.st = state.Pan(m.st, 0, 1, false)
		return m, nil
	}

	if m.st.Mode.Kind == state.INSERT {
		if k == "esc" {
			m.syncCode()
			m.st = state.ToggleMode(m.st)
			m.editor.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.syncCode()
		return m, cmd
	}

	switch k {
	case "q":
		return m, tea.Quit
	case "i":
		m.st = state.ToggleMode(m.st)
		cmd := m.editor.Focus()
		return m, cmd
	case "?":
		m.showHelp = true
	case "h":
		m.st = state.Pan(m.st, -1, 0, false)
	case "l":
		m.st = state.Pan(m.st, 1, 0, false)
	case "k":
		m.st = state.Pan(m.st, 0, -1, false)
	case "j":
		m.st = state.Pan(m.st, 0, 1, false)
	case "H":
		m.st = state.Pan(m.st, -1, 0, true)
	case "L":
		m.st = state.Pan(m.st, 1, 0, true)
	case "K":
		m.st = state.Pan(m.st, 0, -1, true)
	case "J":
		m.st = state.Pan(m.st, 0, 1, true)
	case "0":
		m.st = state.ResetView(m.st)
	}
	return m, nil
}

func (m model) keyNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.committing {
			return m, nil
		}
		name := m.name.Value()
		m.st = state.SetInput(m.st, name)
		m.committing = true
		return m, m.sessions.CheckAndSave(name, m.st)
	case "esc":
		if m.committing {
			return m, nil
		}
		st, err := state.CancelNaming(m.st)
		if err != nil {
			cmd := m.dialogViolation(err)
			return m, cmd
		}
		m.st = st
		cmd := m.closeNameInput()
		return m, cmd
	case "tab":
		if m.name.Value() == "" {
			m.name.SetValue(m.suggestion)
			m.name.CursorEnd()
			m.st = state.SetInput(m.st, m.suggestion)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	m.st = state.SetInput(m.st, m.name.Value())
	return m, cmd
}

func (m model) keyPicker(k string) (tea.Model, tea.Cmd) {
	entries := m.entries()
	m.pickCursor = picker.Clamp(m.pickCursor, entries)
	switch k {
	case "esc", "q":
		m.picking = false
	case "up", "k":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case "down", "j":
		if m.pickCursor < len(entries)-1 {
			m.pickCursor++
		}
	case "enter":
		if len(entries) == 0 {
			return m, nil
		}
		m.picking = false
		return m, m.sessions.Load(entries[m.pickCursor].Name, m.st)
	case "d", "delete", "ctrl+d":
		if len(entries) == 0 {
			return m, nil
		}
		e := entries[m.pickCursor]
		if e.Example {
			m.st.Notice = fmt.Sprintf("%q is a built-in example", e.Name)
			return m, nil
		}
		return m, m.sessions.Delete(e.Name)
	}
	return m, nil
}

// ===== helpers =====

func (m model) entries() []picker.Entry {
	return picker.Entries(m.sessions.Catalog(), m.st.LocalSaves)
}

// syncCode copies the textarea buffer into the model before it is encoded.
func (m *model) syncCode() {
	if v := m.editor.Value(); v != m.st.Code {
		m.st = state.SetCode(m.st, v)
	}
}

func (m *model) openNameInput() tea.Cmd {
	m.editor.Blur()
	m.suggestion = "save-" + uuid.NewString()[:8]
	m.name.Placeholder = m.suggestion
	m.name.SetValue("")
	return m.name.Focus()
}

func (m *model) closeNameInput() tea.Cmd {
	m.name.Blur()
	m.name.SetValue("")
	if m.st.Mode.Kind == state.INSERT {
		return m.editor.Focus()
	}
	return nil
}

// dialogViolation keeps the current model: the dialog and the model disagree
// and there is nothing safe to commit.
func (m *model) dialogViolation(err error) tea.Cmd {
	m.log.Error().Err(err).Str("mode", m.st.Mode.String()).Msg("save dialog out of sync")
	m.st.Notice = "! internal error: save dialog out of sync"
	return m.closeNameInput()
}

// fetchBaseline loads the stored code of the active session in the background.
func (m model) fetchBaseline() tea.Cmd {
	name := m.st.ExName
	sessions := m.sessions
	return func() tea.Msg {
		if ex, ok := sessions.Catalog().Lookup(name); ok {
			return baselineMsg{name: name, code: ex.Content(), ok: true}
		}
		rec, err := sessions.Peek(sessions.Context(), name)
		if err != nil {
			return baselineMsg{name: name}
		}
		return baselineMsg{name: name, code: rec.Code, ok: true}
	}
}

func (m *model) layout() {
	w, h := m.width, m.height-4
	if h < 3 {
		h = 3
	}
	if m.st.Orient == state.Horizontal {
		w = m.width / 2
	} else {
		h = h / 2
	}
	if w < 10 {
		w = 10
	}
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

// ===== Views =====

func (m model) View() string {
	if m.showHelp {
		return helpoverlay.NewHelpOverlay().View(m.st)
	}

	var b strings.Builder
	switch {
	case m.picking:
		b.WriteString(picker.Render(m.entries(), picker.Clamp(m.pickCursor, m.entries()), m.st.ExName, m.noColor))
	default:
		b.WriteString(m.viewBody())
	}

	if m.st.Mode.IsNaming() {
		b.WriteString("\n" + savedialog.View(m.name.View(), m.st.InputHint, m.width, m.noColor))
	}

	tags := util.ComputeTags(m.st, m.baseline, m.hasBaseline, m.sessions.Catalog())
	chips := tagchips.View(tags, m.noColor)
	b.WriteString("\n" + statusbar.NewStatusBar().View(m.st, chips) + "\n")
	return b.String()
}

func (m model) viewBody() string {
	code := editor.NewEditor().View(m.st, m.editor.View())

	paneWidth, paneHeight := m.width, m.height/2
	if m.st.Orient == state.Horizontal {
		paneWidth, paneHeight = m.width/2, m.height-4
	}

	var side string
	if m.showDiff && m.hasBaseline {
		side = diff.NewDiffView(m.noColor).View(m.st, m.baseline, m.st.Code, m.width)
	} else {
		side = editor.NewEditor().Preview(m.st, paneWidth, paneHeight)
	}

	if m.st.Orient == state.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, code, "  ", side)
	}
	return lipgloss.JoinVertical(lipgloss.Left, code, side)
}
