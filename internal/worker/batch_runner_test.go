package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewBatchRunnerDefaults(t *testing.T) {
	runner := NewBatchRunner(0, testLogger())
	if runner.Workers() != 1 {
		t.Fatalf("expected workers default to 1, got %d", runner.Workers())
	}
}

func TestRunInlineKeepsOrder(t *testing.T) {
	runner := NewBatchRunner(4, testLogger())
	var seen []int
	err := runner.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		seen = append(seen, i)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("expected sequential order, got %v", seen)
		}
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 items, got %d", len(seen))
	}
}

func TestRunInlineStopSkipsRemaining(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	var ran []int
	err := runner.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		ran = append(ran, i)
		if i == 1 {
			return ErrStopBatch
		}
		return nil
	})
	if !errors.Is(err, ErrStopBatch) {
		t.Fatalf("expected ErrStopBatch, got %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected 2 items to run, got %v", ran)
	}
}

func TestRunInlineContinuesOnTaskError(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	count := 0
	err := runner.Run(context.Background(), 3, func(ctx context.Context, i int) error {
		count++
		return errors.New("boom")
	})
	if err != nil || count != 3 {
		t.Fatalf("expected all items to run without error, got %d %v", count, err)
	}
}

func TestRunInlineCanceledContext(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runner.Run(ctx, 3, func(ctx context.Context, i int) error {
		t.Fatal("task must not run")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	if err := runner.Run(context.Background(), 0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPoolRunsEveryIndex(t *testing.T) {
	runner := NewBatchRunner(3, testLogger())
	runner.Start(context.Background())
	defer runner.Stop()

	results := make([]int, 20)
	err := runner.Run(context.Background(), len(results), func(ctx context.Context, i int) error {
		results[i] = i * 10
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range results {
		if v != i*10 {
			t.Fatalf("result %d not written: %v", i, results)
		}
	}
}

func TestPoolRunsConcurrently(t *testing.T) {
	runner := NewBatchRunner(2, testLogger())
	runner.Start(context.Background())
	defer runner.Stop()

	var arrived sync.WaitGroup
	arrived.Add(2)
	release := make(chan struct{})
	go func() {
		arrived.Wait()
		close(release)
	}()

	err := runner.Run(context.Background(), 2, func(ctx context.Context, i int) error {
		arrived.Done()
		select {
		case <-release:
			return nil
		case <-time.After(time.Second):
			return errors.New("items did not overlap")
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-release:
	default:
		t.Fatal("expected both items to run at the same time")
	}
}

func TestPoolStopSkipsNotStarted(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	runner.Start(context.Background())
	defer runner.Stop()

	var ran atomic.Int32
	err := runner.Run(context.Background(), 5, func(ctx context.Context, i int) error {
		ran.Add(1)
		if i == 1 {
			return ErrStopBatch
		}
		return nil
	})
	if !errors.Is(err, ErrStopBatch) {
		t.Fatalf("expected ErrStopBatch, got %v", err)
	}
	if ran.Load() != 2 {
		t.Fatalf("expected 2 items to run, got %d", ran.Load())
	}
}

func TestPoolCanceledContext(t *testing.T) {
	runner := NewBatchRunner(1, testLogger())
	runner.Start(context.Background())
	defer runner.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	err := runner.Run(ctx, 3, func(ctx context.Context, i int) error {
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	runner := NewBatchRunner(2, testLogger())
	runner.Start(context.Background())
	runner.Start(context.Background())
	runner.Stop()
	runner.Stop()

	count := 0
	if err := runner.Run(context.Background(), 2, func(ctx context.Context, i int) error {
		count++
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected inline execution after stop, got %d", count)
	}
}
