package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// ErrStopBatch is returned by a task to skip every item of the batch that has not started yet.
var ErrStopBatch = errors.New("stop batch")

// ErrRunnerStopped reports a batch interrupted by runner shutdown.
var ErrRunnerStopped = errors.New("batch runner stopped")

// Task processes item i of a batch. Tasks record their own results by index.
type Task func(ctx context.Context, i int) error

type job struct {
	ctx     context.Context
	index   int
	task    Task
	stopped *atomic.Bool
	done    func()
}

// BatchRunner fans batch items out to a fixed pool of workers.
type BatchRunner struct {
	workers int
	logger  *slog.Logger

	jobs    chan job
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	poolCtx context.Context
	mu      sync.Mutex
}

// NewBatchRunner constructs batch runner worker pool.
func NewBatchRunner(workers int, logger *slog.Logger) *BatchRunner {
	if workers <= 0 {
		workers = 1
	}
	return &BatchRunner{
		workers: workers,
		logger:  logger,
		jobs:    make(chan job),
	}
}

// Start launches the pool. Batches submitted before Start run inline.
func (r *BatchRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.poolCtx = runCtx

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (r *BatchRunner) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
		r.poolCtx = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// Workers returns the pool size.
func (r *BatchRunner) Workers() int {
	return r.workers
}

// Run executes task for indexes 0..n-1 and returns when all started items finished.
// It returns ErrStopBatch when a task asked to stop, or the context error when ctx ended first.
func (r *BatchRunner) Run(ctx context.Context, n int, task Task) error {
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	poolCtx := r.poolCtx
	r.mu.Unlock()

	if poolCtx == nil {
		return r.runInline(ctx, n, task)
	}

	var (
		wg      sync.WaitGroup
		stopped atomic.Bool
		err     error
	)

dispatch:
	for i := 0; i < n; i++ {
		if stopped.Load() {
			break
		}
		wg.Add(1)
		j := job{ctx: ctx, index: i, task: task, stopped: &stopped, done: wg.Done}
		select {
		case r.jobs <- j:
		case <-ctx.Done():
			wg.Done()
			err = ctx.Err()
			break dispatch
		case <-poolCtx.Done():
			wg.Done()
			err = ErrRunnerStopped
			break dispatch
		}
	}
	wg.Wait()

	if stopped.Load() {
		return ErrStopBatch
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

func (r *BatchRunner) runInline(ctx context.Context, n int, task Task) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx, i); err != nil {
			if errors.Is(err, ErrStopBatch) {
				return ErrStopBatch
			}
			r.logger.Warn("batch task failed", slog.Int("index", i), slog.String("error", err.Error()))
		}
	}
	return nil
}

func (r *BatchRunner) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-r.jobs:
			r.execute(j)
		}
	}
}

func (r *BatchRunner) execute(j job) {
	defer j.done()
	if j.stopped.Load() || j.ctx.Err() != nil {
		return
	}
	if err := j.task(j.ctx, j.index); err != nil {
		if errors.Is(err, ErrStopBatch) {
			j.stopped.Store(true)
			return
		}
		r.logger.Warn("batch task failed", slog.Int("index", j.index), slog.String("error", err.Error()))
	}
}
