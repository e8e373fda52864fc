package di

import (
	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/adapter/logistics"
	"github.com/rushrr/courier/internal/adapter/shopify"
	"github.com/rushrr/courier/internal/airwaybill"
	"github.com/rushrr/courier/internal/app"
	"github.com/rushrr/courier/internal/config"
	"github.com/rushrr/courier/internal/logger"
	"github.com/rushrr/courier/internal/metrics"
	"github.com/rushrr/courier/internal/pkg/auth"
	"github.com/rushrr/courier/internal/pkg/secret"
	"github.com/rushrr/courier/internal/server/http/router"
	"github.com/rushrr/courier/internal/storage/postgres"
	"github.com/rushrr/courier/internal/usecase"
	"github.com/rushrr/courier/internal/worker"
)

// Module composes the full application graph. opts are appended last so
// tests can replace collaborators.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		secret.Module,
		postgres.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		shopify.Module,
		logistics.Module,
		airwaybill.Module,
		worker.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
