package repository

import "context"

// CredentialStore keeps the logistics API token of each shop. Writes are last-write-wins.
type CredentialStore interface {
	Get(ctx context.Context, shop string) (string, error)
	Set(ctx context.Context, shop, token string) error
	Delete(ctx context.Context, shop string) error
}
