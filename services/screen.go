package services

import (
	"log/slog"
	"sync"

	"pocket-notes/notice"
	"pocket-notes/storage"
	"pocket-notes/validator"
	"pocket-notes/writeback"
)

// State is the lifecycle of a screen's in-memory copy.
type State string

const (
	StateUnloaded   State = "unloaded"
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateLoadFailed State = "load_failed"
)

// Loaded reports whether the screen has finished its first load, either
// successfully or by falling back to defaults.
func (s State) Loaded() bool {
	return s == StateReady || s == StateLoadFailed
}

// Screen names, also used as notice channels.
const (
	ScreenNotes     = "notes"
	ScreenFavorites = "favorites"
	ScreenSettings  = "settings"
)

// screen holds the plumbing shared by every screen controller.
type screen struct {
	name      string
	store     storage.RecordStore
	writer    writeback.Submitter
	notifier  notice.Notifier
	validator *validator.Validator
	logger    *slog.Logger

	// loadMu serializes loads; mu guards state and the screen's data.
	loadMu sync.Mutex
	mu     sync.Mutex
	state  State
}

func (s *screen) init(name string, d Deps) {
	s.name = name
	s.store = d.Store
	s.writer = d.Writer
	s.notifier = d.Notifier
	s.validator = d.Validator
	s.logger = d.Logger.With("screen", name)
	s.state = StateUnloaded
}

func (s *screen) Name() string {
	return s.name
}

func (s *screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *screen) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *screen) notify(kind notice.Kind, title, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(notice.Notice{
		Kind:    kind,
		Title:   title,
		Message: message,
		Screen:  s.name,
	})
}

// submit hands writes to the write-back queue. Failures are logged and
// surfaced as failMessage; the in-memory state is never rolled back.
// Callers hold s.mu so jobs are queued in mutation order.
func (s *screen) submit(writes []writeback.Write, failMessage, successMessage string) *writeback.Task {
	return s.writer.Submit(writeback.Job{
		Screen: s.name,
		Writes: writes,
		OnComplete: func(r writeback.Result) {
			if !r.OK() {
				s.logger.Error("save failed", "error", r.Err)
				s.notify(notice.KindError, "Error", failMessage)
				return
			}
			if successMessage != "" {
				s.notify(notice.KindSuccess, "Success", successMessage)
			}
		},
	})
}
