package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
	"github.com/rushrr/courier/internal/domain/repository"
	"github.com/rushrr/courier/internal/pkg/secret"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.SessionRepository { return f.Sessions() },
		func(f repository.Factory) repository.CredentialStore { return f.Credentials() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Box    *secret.Box
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Box, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
