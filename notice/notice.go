package notice

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Kind string

const (
	KindError      Kind = "error"
	KindValidation Kind = "validation"
	KindSuccess    Kind = "success"
)

// Notice is a one-shot user-visible message raised by a screen.
type Notice struct {
	Kind    Kind      `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Screen  string    `json:"screen"`
	At      time.Time `json:"at"`
}

// Notifier receives notices from screens.
type Notifier interface {
	Notify(n Notice)
}

// DefaultCapacity bounds how many undelivered notices a screen keeps.
const DefaultCapacity = 20

// Center queues notices per screen until they are drained for display.
type Center struct {
	mu       sync.Mutex
	pending  map[string][]Notice
	capacity int
	logger   *slog.Logger
}

func NewCenter(logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{
		pending:  make(map[string][]Notice),
		capacity: DefaultCapacity,
		logger:   logger,
	}
}

// Notify queues n for its screen, dropping the oldest notice when full.
func (c *Center) Notify(n Notice) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	level := slog.LevelInfo
	if n.Kind == KindError {
		level = slog.LevelWarn
	}
	c.logger.Log(context.Background(), level, "notice raised",
		"screen", n.Screen,
		"kind", string(n.Kind),
		"title", n.Title,
		"message", n.Message,
	)

	c.mu.Lock()
	defer c.mu.Unlock()

	queue := append(c.pending[n.Screen], n)
	if len(queue) > c.capacity {
		queue = queue[len(queue)-c.capacity:]
	}
	c.pending[n.Screen] = queue
}

// Drain returns the pending notices for screen and forgets them.
func (c *Center) Drain(screen string) []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.pending[screen]
	delete(c.pending, screen)
	if queue == nil {
		return []Notice{}
	}
	return queue
}

// Pending reports how many notices are waiting for screen.
func (c *Center) Pending(screen string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending[screen])
}
