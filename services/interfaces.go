package services

import (
	"log/slog"
	"time"

	"pocket-notes/notice"
	"pocket-notes/storage"
	"pocket-notes/validator"
	"pocket-notes/writeback"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh record id.
type IDGenerator func() string

// NewID returns a time-ordered UUIDv7, so ids still sort by creation time
// but two records made in the same millisecond do not collide.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// DefaultDateLayout renders dates like 10/17/2026.
const DefaultDateLayout = "1/2/2006"

// Deps is everything a screen needs. Zero-value optional fields are
// filled with defaults by withDefaults.
type Deps struct {
	Store      storage.RecordStore
	Writer     writeback.Submitter
	Notifier   notice.Notifier
	Validator  *validator.Validator
	Logger     *slog.Logger
	NewID      IDGenerator
	Now        func() time.Time
	DateLayout string
}

func (d Deps) withDefaults() Deps {
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.NewID == nil {
		d.NewID = NewID
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.DateLayout == "" {
		d.DateLayout = DefaultDateLayout
	}
	return d
}
