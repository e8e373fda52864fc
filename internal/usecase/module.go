package usecase

import (
	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/metrics"
	"github.com/rushrr/courier/internal/worker"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(r *metrics.Recorder) Metrics { return r },
	func(r *worker.BatchRunner) BatchRunner { return r },
	NewOrderFetcher,
	NewProcessOrdersUseCase,
	NewOrdersUseCase,
	NewSetupUseCase,
	NewDetailsUseCase,
	NewDiagnosticsUseCase,
)
