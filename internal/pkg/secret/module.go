package secret

import (
	"go.uber.org/fx"

	"github.com/rushrr/courier/internal/config"
)

// Module provides the credential box via fx.
var Module = fx.Provide(newBox)

type boxParams struct {
	fx.In

	Config *config.Config
}

func newBox(p boxParams) (*Box, error) {
	return New(p.Config.CredentialKey)
}
