package auth

import (
	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newKeyVerifier),
	fx.Provide(newTokenStrategy),
)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newKeyVerifier(p strategyParams) (KeyVerifier, error) {
	return NewBcryptKeyVerifier(p.Config.AdminKey, 0)
}

func newTokenStrategy(p strategyParams) Strategy {
	chain := Chain{NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})}
	if s := NewShopifySessionStrategy(p.Config.ShopifyAPISecret, p.Config.ShopifyAPIKey, Options{}); s != nil {
		chain = append(chain, s)
	}
	return chain
}
