// Package store is the key-value gateway save states are written to. It keeps
// no session state of its own.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no value is stored under the requested name.
	ErrNotFound = errors.New("save not found")

	// ErrUnavailable wraps failures of the backing store itself.
	ErrUnavailable = errors.New("store unavailable")
)

// Store maps save names to serialized records.
type Store interface {
	// Get returns the value stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) (string, error)

	// Set writes value under name, replacing any previous value.
	Set(ctx context.Context, name, value string) error

	// ListKeys returns every stored name in ascending order.
	ListKeys(ctx context.Context) ([]string, error)

	// Remove deletes name. Removing a missing name is not an error.
	Remove(ctx context.Context, name string) error

	// Clear deletes every stored name.
	Clear(ctx context.Context) error
}
