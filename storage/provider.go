package storage

import (
	"context"
	"errors"
)

// Failure classes shared by every backend. Callers test them with errors.Is.
var (
	ErrReadFailure  = errors.New("record store read failed")
	ErrWriteFailure = errors.New("record store write failed")
)

// RecordStore is the contract every persistence backend satisfies.
// Values are opaque serialized strings addressed by a fixed key.
type RecordStore interface {
	// Get returns the value stored under key. A key that was never written
	// yields found == false and a nil error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set replaces the value under key. Readers observe either the old or
	// the new value, never a partial one.
	Set(ctx context.Context, key, value string) error
}

// Lister is implemented by backends that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Closer is implemented by backends holding OS resources.
type Closer interface {
	Close() error
}
