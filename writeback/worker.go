package writeback

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"pocket-notes/storage"
)

// ErrWorkerStopped completes tasks submitted after Stop.
var ErrWorkerStopped = errors.New("write-back worker stopped")

const defaultQueueSize = 64

// Write is a single key/value replacement.
type Write struct {
	Key   string
	Value string
}

// Job is a group of writes applied in order. The first failing write
// ends the job; later writes in the same job are skipped.
type Job struct {
	Screen     string
	Writes     []Write
	OnComplete func(Result)
}

// Result is the outcome of a job. It never panics and never retries.
type Result struct {
	Err       error
	Completed int
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Task is the handle returned for a submitted job.
type Task struct {
	done   chan struct{}
	result Result
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

// Failed returns a task that has already finished with err.
func Failed(err error) *Task {
	t := newTask()
	t.finish(Result{Err: err})
	return t
}

func (t *Task) finish(r Result) {
	t.result = r
	close(t.done)
}

// Done is closed once the job has run and its OnComplete returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the job finishes or ctx ends. When ctx ends first the
// job keeps running and ctx.Err() is reported.
func (t *Task) Wait(ctx context.Context) Result {
	select {
	case <-t.done:
		return t.result
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

// Submitter is what screens depend on to persist their state.
type Submitter interface {
	Submit(job Job) *Task
}

type pending struct {
	job  Job
	task *Task
}

// Worker applies jobs to a record store one at a time, in submission order.
type Worker struct {
	store    storage.RecordStore
	logger   *slog.Logger
	queue    chan pending
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

var _ Submitter = (*Worker)(nil)

// NewWorker creates a worker writing to store. Call Start before Submit.
func NewWorker(store storage.RecordStore, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		store:    store,
		logger:   logger,
		queue:    make(chan pending, defaultQueueSize),
		stopChan: make(chan struct{}),
	}
}

// Start begins the background write loop
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true

	w.logger.Info("write-back worker starting")

	w.wg.Add(1)
	go w.run()
}

// Stop finishes every queued job and then returns.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Info("write-back worker stopped")
}

// Submit queues job. It does not wait for the writes to happen.
func (w *Worker) Submit(job Job) *Task {
	task := newTask()

	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.complete(job, task, Result{Err: ErrWorkerStopped})
		return task
	}

	w.queue <- pending{job: job, task: task}
	w.mu.Unlock()
	return task
}

func (w *Worker) run() {
	defer w.wg.Done()

	for {
		select {
		case p := <-w.queue:
			w.execute(p)
		case <-w.stopChan:
			// Drain what was accepted before Stop
			for {
				select {
				case p := <-w.queue:
					w.execute(p)
				default:
					return
				}
			}
		}
	}
}

func (w *Worker) execute(p pending) {
	ctx := context.Background()
	result := Result{}

	for _, write := range p.job.Writes {
		if err := w.store.Set(ctx, write.Key, write.Value); err != nil {
			result.Err = err
			w.logger.Error("write failed",
				"screen", p.job.Screen,
				"key", write.Key,
				"error", err,
			)
			break
		}
		result.Completed++
	}

	if result.OK() {
		w.logger.Debug("write completed", "screen", p.job.Screen, "writes", result.Completed)
	}

	w.complete(p.job, p.task, result)
}

func (w *Worker) complete(job Job, task *Task, result Result) {
	if job.OnComplete != nil {
		job.OnComplete(result)
	}
	task.finish(result)
}
