package usecase

import (
	"context"
	"time"

	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/worker"
)

// Metrics receives order pipeline observations.
type Metrics interface {
	OrderProcessed(success bool)
	OrderFetched(source model.FetchSource)
	CustomerNameResolved(source model.NameSource)
	ObserveBatch(d time.Duration)
	Downstream(operation string, err error)
}

// BatchRunner executes per-item tasks of a batch.
type BatchRunner interface {
	Run(ctx context.Context, n int, task worker.Task) error
}
