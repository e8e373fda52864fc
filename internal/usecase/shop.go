package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
)

func requireToken(ctx context.Context, credentials repository.CredentialStore, shop string) (string, error) {
	token, err := credentials.Get(ctx, shop)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return "", domainErrors.ErrTokenNotConfigured
	}
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", domainErrors.ErrTokenNotConfigured
	}
	return token, nil
}

func requireSession(ctx context.Context, sessions repository.SessionRepository, shop string) (model.ShopSession, error) {
	session, err := sessions.Get(ctx, shop)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.ShopSession{}, fmt.Errorf("%w: no shopify session for %s", domainErrors.ErrAuthRequired, shop)
	}
	if err != nil {
		return model.ShopSession{}, err
	}
	return *session, nil
}
