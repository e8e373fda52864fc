package shopify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
)

// Module exposes the Shopify admin client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(Options{
		APIVersion:    p.Config.ShopifyAPIVersion,
		BaseURL:       p.Config.ShopifyAdminBaseURL,
		Timeout:       p.Config.ShopifyTimeout,
		RatePerSecond: p.Config.ShopifyRateLimit,
	}, p.Logger)
}
