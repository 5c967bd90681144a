package services

import (
	"context"
	"strings"
	"time"

	"pocket-notes/models"
	"pocket-notes/writeback"
)

// NotesScreen keeps the note list, newest first, under models.KeyNotes.
type NotesScreen struct {
	listScreen[models.Note]
	newID      IDGenerator
	now        func() time.Time
	dateLayout string
}

// NewNotesScreen creates an unloaded notes screen.
func NewNotesScreen(d Deps) *NotesScreen {
	d = d.withDefaults()
	s := &NotesScreen{
		newID:      d.NewID,
		now:        d.Now,
		dateLayout: d.DateLayout,
	}
	s.listScreen.init(ScreenNotes, models.KeyNotes, d,
		func(n models.Note) string { return n.ID },
		true,
		listMessages{
			loadFailed: "Could not load notes.",
			saveFailed: "Could not save notes.",
			empty:      "Note cannot be empty.",
		},
	)
	return s
}

// Add trims text, prepends a new note and queues a save. Blank text is
// rejected with ErrValidation before anything is written.
func (s *NotesScreen) Add(ctx context.Context, text string) (models.Note, *writeback.Task, error) {
	req := models.CreateNoteRequest{Text: strings.TrimSpace(text)}
	if err := s.validator.Validate(req); err != nil {
		return models.Note{}, nil, s.rejectEmpty(err)
	}

	// A failed load still leaves an editable (empty) list.
	_ = s.Load(ctx)

	note := models.Note{
		ID:   s.newID(),
		Text: req.Text,
		Date: s.now().Format(s.dateLayout),
	}
	return note, s.insert(note), nil
}

// Remove deletes the note with id. The task is nil when nothing matched.
func (s *NotesScreen) Remove(ctx context.Context, id string) (bool, *writeback.Task) {
	_ = s.Load(ctx)
	return s.remove(id)
}
