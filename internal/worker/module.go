package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
)

// Module provides the batch runner. Its lifecycle is owned by the app module.
var Module = fx.Provide(newBatchRunner)

type runnerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newBatchRunner(p runnerParams) *BatchRunner {
	return NewBatchRunner(p.Config.BatchWorkers, p.Logger)
}
