package repository

import (
	"context"

	"github.com/rushrr/courier/internal/domain/model"
)

// SessionRepository persists Shopify admin sessions per shop.
type SessionRepository interface {
	Save(ctx context.Context, session model.ShopSession) (*model.ShopSession, error)
	Get(ctx context.Context, shop string) (*model.ShopSession, error)
	// Delete removes the session together with the shop's logistics credential.
	Delete(ctx context.Context, shop string) error
}
