// Package savestate persists editor sessions: the record codec, the save-name
// rule, and the save/load/list/delete/clear operations. Operations return a
// tea.Cmd whose single message is the operation's result.
package savestate

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"codepad/internal/examples"
	"codepad/internal/store"
	"codepad/internal/tui/state"
)

// Sessions runs session operations against a store.
type Sessions struct {
	ctx     context.Context
	store   store.Store
	catalog examples.Catalog
	log     zerolog.Logger
}

func New(st store.Store, catalog examples.Catalog, log zerolog.Logger) *Sessions {
	return &Sessions{ctx: context.Background(), store: st, catalog: catalog, log: log}
}

// WithContext returns a copy whose store calls use ctx.
func (s *Sessions) WithContext(ctx context.Context) *Sessions {
	cp := *s
	cp.ctx = ctx
	return &cp
}

// Context is the context store calls run under.
func (s *Sessions) Context() context.Context { return s.ctx }

// Catalog returns the reserved example catalog.
func (s *Sessions) Catalog() examples.Catalog { return s.catalog }

// Save writes m under name. With asNew set it only asks for the save-as
// dialog; nothing is written.
func (s *Sessions) Save(name string, asNew bool, m state.Model) tea.Cmd {
	if asNew {
		return func() tea.Msg { return SaveAsRequested{} }
	}
	rec := Encode(m)
	return func() tea.Msg {
		if err := s.write(name, rec); err != nil {
			return s.failed(OpSave, name, err)
		}
		return Saved{Name: name}
	}
}

// CheckAndSave is the save-as commit path. Rejected names never reach the
// store.
func (s *Sessions) CheckAndSave(name string, m state.Model) tea.Cmd {
	if !IsValidName(name, s.catalog.Names()) {
		s.log.Debug().Str("op", OpSave).Str("name", name).Msg("save name rejected")
		return func() tea.Msg { return InvalidName{Name: name} }
	}
	rec := Encode(m)
	return func() tea.Msg {
		if err := s.write(name, rec); err != nil {
			return s.failed(OpSave, name, err)
		}
		return NameCommitted{Name: name}
	}
}

// Load selects a built-in example by exact name, or reads a stored save and
// hydrates it over the save list m holds now.
func (s *Sessions) Load(name string, m state.Model) tea.Cmd {
	if ex, ok := s.catalog.Lookup(name); ok {
		return func() tea.Msg { return ExampleSelected{Name: ex.Name, Content: ex.Content} }
	}
	saves := append([]string(nil), m.LocalSaves...)
	return func() tea.Msg {
		rec, err := s.Peek(s.ctx, name)
		if err != nil {
			return s.failed(OpLoad, name, err)
		}
		loaded := Hydrate(rec, saves)
		loaded.ExName = name
		return Loaded{Name: name, Model: loaded}
	}
}

// ListSaves refreshes the save list from the store.
func (s *Sessions) ListSaves() tea.Cmd {
	return func() tea.Msg {
		s.log.Debug().Str("op", OpList).Msg("store call")
		names, err := s.store.ListKeys(s.ctx)
		if err != nil {
			return s.failed(OpList, "", err)
		}
		return Listed{Names: names}
	}
}

// ClearAll empties the store.
func (s *Sessions) ClearAll() tea.Cmd {
	return func() tea.Msg {
		s.log.Debug().Str("op", OpClear).Msg("store call")
		if err := s.store.Clear(s.ctx); err != nil {
			return s.failed(OpClear, "", err)
		}
		return Cleared{Scratch: examples.Scratch}
	}
}

// Delete removes one save.
func (s *Sessions) Delete(name string) tea.Cmd {
	return func() tea.Msg {
		s.log.Debug().Str("op", OpDelete).Str("name", name).Msg("store call")
		if err := s.store.Remove(s.ctx, name); err != nil {
			return s.failed(OpDelete, name, err)
		}
		return Deleted{Name: name}
	}
}

// Peek reads and decodes a stored save without touching any model.
func (s *Sessions) Peek(ctx context.Context, name string) (Record, error) {
	s.log.Debug().Str("op", OpLoad).Str("name", name).Msg("store call")
	data, err := s.store.Get(ctx, name)
	if err != nil {
		return Record{}, err
	}
	return Decode(data)
}

func (s *Sessions) write(name string, rec Record) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	s.log.Debug().Str("op", OpSave).Str("name", name).Int("bytes", len(data)).Msg("store call")
	return s.store.Set(s.ctx, name, data)
}

func (s *Sessions) failed(op, name string, err error) OpFailed {
	s.log.Warn().Err(err).Str("op", op).Str("name", name).Msg("session operation failed")
	return OpFailed{Op: op, Name: name, Err: err}
}
