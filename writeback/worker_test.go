package writeback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"pocket-notes/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of storage.RecordStore
type MockStore struct {
	mock.Mock
}

var _ storage.RecordStore = (*MockStore)(nil)

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitResult(t *testing.T, task *Task) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r := task.Wait(ctx)
	require.NotErrorIs(t, r.Err, context.DeadlineExceeded, "task did not finish")
	return r
}

func TestWorker_AppliesWrites(t *testing.T) {
	store := storage.NewMemoryStore()
	w := NewWorker(store, quietLogger())
	w.Start()
	defer w.Stop()

	var seen Result
	task := w.Submit(Job{
		Screen: "settings",
		Writes: []Write{
			{Key: "@username", Value: "ada"},
			{Key: "@darkMode", Value: "true"},
			{Key: "@notifications", Value: "false"},
		},
		OnComplete: func(r Result) { seen = r },
	})

	r := waitResult(t, task)
	assert.True(t, r.OK())
	assert.Equal(t, 3, r.Completed)
	assert.Equal(t, r, seen, "callback runs before Done closes")

	value, found, err := store.Get(context.Background(), "@darkMode")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", value)
}

func TestWorker_FIFOLastWriteWins(t *testing.T) {
	store := storage.NewMemoryStore()
	w := NewWorker(store, quietLogger())
	w.Start()
	defer w.Stop()

	var last *Task
	for i := 0; i < 50; i++ {
		last = w.Submit(Job{Screen: "notes", Writes: []Write{{Key: "@notes", Value: fmt.Sprintf("v%d", i)}}})
	}
	waitResult(t, last)

	value, _, err := store.Get(context.Background(), "@notes")
	require.NoError(t, err)
	assert.Equal(t, "v49", value)
}

func TestWorker_StopsJobAtFirstFailure(t *testing.T) {
	store := new(MockStore)
	boom := fmt.Errorf("%w: disk full", storage.ErrWriteFailure)
	store.On("Set", "@username", "ada").Return(nil)
	store.On("Set", "@darkMode", "true").Return(boom)

	w := NewWorker(store, quietLogger())
	w.Start()
	defer w.Stop()

	r := waitResult(t, w.Submit(Job{
		Screen: "settings",
		Writes: []Write{
			{Key: "@username", Value: "ada"},
			{Key: "@darkMode", Value: "true"},
			{Key: "@notifications", Value: "true"},
		},
	}))

	assert.False(t, r.OK())
	assert.ErrorIs(t, r.Err, storage.ErrWriteFailure)
	assert.Equal(t, 1, r.Completed)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Set", "@notifications", "true")
}

func TestWorker_StopDrainsQueue(t *testing.T) {
	store := storage.NewMemoryStore()
	w := NewWorker(store, quietLogger())
	w.Start()

	tasks := make([]*Task, 0, 10)
	for i := 0; i < 10; i++ {
		tasks = append(tasks, w.Submit(Job{Writes: []Write{{Key: fmt.Sprintf("k%d", i), Value: "v"}}}))
	}
	w.Stop()

	for _, task := range tasks {
		select {
		case <-task.Done():
		default:
			t.Fatal("queued task was not executed before Stop returned")
		}
	}

	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 10)
}

func TestWorker_SubmitAfterStop(t *testing.T) {
	w := NewWorker(storage.NewMemoryStore(), quietLogger())
	w.Start()
	w.Stop()
	w.Stop()

	called := false
	task := w.Submit(Job{
		Writes:     []Write{{Key: "@notes", Value: "[]"}},
		OnComplete: func(r Result) { called = true },
	})

	r := waitResult(t, task)
	assert.True(t, errors.Is(r.Err, ErrWorkerStopped))
	assert.True(t, called)
}

func TestTask_WaitHonorsContext(t *testing.T) {
	task := newTask()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := task.Wait(ctx)
	assert.ErrorIs(t, r.Err, context.Canceled)
}
