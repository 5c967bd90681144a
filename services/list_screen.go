package services

import (
	"context"
	"errors"
	"fmt"

	"pocket-notes/models"
	"pocket-notes/notice"
	"pocket-notes/storage"
	"pocket-notes/writeback"
)

// listMessages are the user-facing texts a list screen raises.
type listMessages struct {
	loadFailed string
	saveFailed string
	empty      string
}

// listScreen is a screen whose state is an ordered slice of records stored
// as one JSON array under a single key. Every mutation rewrites the array.
type listScreen[T any] struct {
	screen
	key         string
	idOf        func(T) string
	newestFirst bool
	messages    listMessages
	items       []T
}

func (l *listScreen[T]) init(name, key string, d Deps, idOf func(T) string, newestFirst bool, messages listMessages) {
	l.screen.init(name, d)
	l.key = key
	l.idOf = idOf
	l.newestFirst = newestFirst
	l.messages = messages
	l.items = []T{}
}

// Load reads the list once. A read or decode failure leaves the list
// empty, raises a notice, and is returned for logging; the screen remains
// usable in StateLoadFailed.
func (l *listScreen[T]) Load(ctx context.Context) error {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	if l.State().Loaded() {
		return nil
	}
	l.setState(StateLoading)

	items, err := l.read(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.items = []T{}
		l.state = StateLoadFailed
		l.logger.Error("load failed", "key", l.key, "error", err)
		l.notify(notice.KindError, "Error", l.messages.loadFailed)
		return err
	}

	l.items = items
	l.state = StateReady
	l.logger.Debug("loaded", "key", l.key, "count", len(items))
	return nil
}

func (l *listScreen[T]) read(ctx context.Context) ([]T, error) {
	raw, found, err := l.store.Get(ctx, l.key)
	if err != nil {
		return nil, asReadFailure(l.key, err)
	}
	if !found {
		return []T{}, nil
	}

	items, err := models.DecodeList[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrReadFailure, l.key, err)
	}
	return items, nil
}

// Items returns a copy of the current list.
func (l *listScreen[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get looks up a record by id.
func (l *listScreen[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if l.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len is the number of records in memory.
func (l *listScreen[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *listScreen[T]) rejectEmpty(err error) error {
	l.logger.Info("input rejected", "error", err)
	l.notify(notice.KindValidation, "Validation", l.messages.empty)
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// insert adds item and queues a write of the whole list.
func (l *listScreen[T]) insert(item T) *writeback.Task {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.newestFirst {
		l.items = append([]T{item}, l.items...)
	} else {
		l.items = append(l.items, item)
	}
	return l.persistLocked()
}

// remove drops every record with id. It reports whether anything changed;
// removing an absent id neither changes the list nor writes.
func (l *listScreen[T]) remove(id string) (bool, *writeback.Task) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if l.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(l.items) {
		return false, nil
	}

	l.items = kept
	return true, l.persistLocked()
}

func (l *listScreen[T]) persistLocked() *writeback.Task {
	raw, err := models.EncodeList(l.items)
	if err != nil {
		// Encoding plain structs does not fail; treat it like a write failure.
		l.logger.Error("encode failed", "key", l.key, "error", err)
		l.notify(notice.KindError, "Error", l.messages.saveFailed)
		return writeback.Failed(fmt.Errorf("%w: %v", storage.ErrWriteFailure, err))
	}
	return l.submit([]writeback.Write{{Key: l.key, Value: raw}}, l.messages.saveFailed, "")
}

// asReadFailure classifies backend errors that are not already classified.
func asReadFailure(key string, err error) error {
	if errors.Is(err, storage.ErrReadFailure) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", storage.ErrReadFailure, key, err)
}
