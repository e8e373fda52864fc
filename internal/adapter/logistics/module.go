package logistics

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
)

// Module exposes the logistics backend client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.LogisticsBaseURL, p.Config.LogisticsTimeout, p.Logger)
}
