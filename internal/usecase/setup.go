package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/rushrr/courier/internal/adapter/logistics"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
	"github.com/rushrr/courier/internal/pkg/auth"
)

// SetupUseCase manages shop sessions and logistics credentials.
type SetupUseCase struct {
	sessions    repository.SessionRepository
	credentials repository.CredentialStore
	logistics   logistics.Client
	strategy    auth.Strategy
	metrics     Metrics
	logger      *slog.Logger
}

// NewSetupUseCase constructs SetupUseCase.
func NewSetupUseCase(
	sessions repository.SessionRepository,
	credentials repository.CredentialStore,
	client logistics.Client,
	strategy auth.Strategy,
	metrics Metrics,
	logger *slog.Logger,
) *SetupUseCase {
	return &SetupUseCase{
		sessions:    sessions,
		credentials: credentials,
		logistics:   client,
		strategy:    strategy,
		metrics:     metrics,
		logger:      logger,
	}
}

// SaveToken stores the logistics token of a shop. The last write wins.
func (u *SetupUseCase) SaveToken(ctx context.Context, shop, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainErrors.ErrInvalidRequest
	}
	return u.credentials.Set(ctx, shop, token)
}

// Status reports whether a logistics token is stored for the shop.
func (u *SetupUseCase) Status(ctx context.Context, shop string) (model.SetupStatus, error) {
	_, err := requireToken(ctx, u.credentials, shop)
	switch {
	case err == nil:
		return model.SetupStatus{Shop: shop, HasToken: true}, nil
	case errors.Is(err, domainErrors.ErrTokenNotConfigured):
		return model.SetupStatus{Shop: shop}, nil
	default:
		return model.SetupStatus{}, err
	}
}

// Connect obtains a token for the store, stores it and verifies the merchant API key.
func (u *SetupUseCase) Connect(ctx context.Context, shop, shopName, apiKey string) (json.RawMessage, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, domainErrors.ErrInvalidRequest
	}
	if strings.TrimSpace(shopName) == "" {
		shopName, _, _ = strings.Cut(shop, ".")
	}

	token, err := u.logistics.VerifyStore(ctx, shop)
	u.metrics.Downstream("verify_store", err)
	if err != nil {
		return nil, err
	}
	if err := u.credentials.Set(ctx, shop, token); err != nil {
		return nil, err
	}

	response, err := u.logistics.VerifyAPIKey(ctx, token, apiKey, shop, shopName)
	u.metrics.Downstream("verify_api_key", err)
	if err != nil {
		return nil, err
	}
	u.logger.Info("shop connected to logistics", slog.String("shop", shop))
	return response, nil
}

// Disconnect removes the logistics token of a shop.
func (u *SetupUseCase) Disconnect(ctx context.Context, shop string) error {
	return u.credentials.Delete(ctx, shop)
}

// ProvisionSession stores Shopify admin credentials and issues a session token for the shop.
func (u *SetupUseCase) ProvisionSession(ctx context.Context, session model.ShopSession) (*model.ShopSession, string, error) {
	session.Shop = NormalizeShop(session.Shop)
	session.AccessToken = strings.TrimSpace(session.AccessToken)
	if session.Shop == "" || session.AccessToken == "" {
		return nil, "", domainErrors.ErrInvalidRequest
	}

	saved, err := u.sessions.Save(ctx, session)
	if err != nil {
		return nil, "", err
	}
	token, err := u.strategy.IssueToken(saved.Shop)
	if err != nil {
		return nil, "", err
	}
	u.logger.Info("shop session provisioned", slog.String("shop", saved.Shop))
	return saved, token, nil
}

// RemoveShop deletes the Shopify session and logistics token of a shop.
func (u *SetupUseCase) RemoveShop(ctx context.Context, shop string) error {
	shop = NormalizeShop(shop)
	if shop == "" {
		return domainErrors.ErrInvalidRequest
	}
	if err := u.sessions.Delete(ctx, shop); err != nil {
		return err
	}
	u.logger.Info("shop session removed", slog.String("shop", shop))
	return nil
}

// NormalizeShop lowercases a shop domain and strips any scheme or trailing slash.
func NormalizeShop(shop string) string {
	shop = strings.ToLower(strings.TrimSpace(shop))
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimSuffix(shop, "/")
}
