package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemStore is an in-process Store. The zero value is not usable; call NewMem.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
	fail error
}

func NewMem() *MemStore {
	return &MemStore{data: map[string]string{}}
}

// FailWith makes every following call return err wrapped in ErrUnavailable.
// Passing nil restores normal behaviour.
func (s *MemStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *MemStore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if s.fail != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, s.fail)
	}
	return nil
}

func (s *MemStore) Get(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return "", err
	}
	v, ok := s.data[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return v, nil
}

func (s *MemStore) Set(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.data[name] = value
	return nil
}

func (s *MemStore) ListKeys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	delete(s.data, name)
	return nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.data = map[string]string{}
	return nil
}
