package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Sealer encrypts credentials before they reach the database.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	sealer Sealer
	logger *slog.Logger
}

type sessionRepository struct {
	storage *Storage
}

type credentialStore struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, sealer Sealer, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, sealer: sealer, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) Credentials() repository.CredentialStore {
	return &credentialStore{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shop_sessions (
            shop TEXT PRIMARY KEY,
            access_token_enc TEXT NOT NULL,
            scope TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS logistics_credentials (
            shop TEXT PRIMARY KEY,
            token_enc TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Save(ctx context.Context, session model.ShopSession) (*model.ShopSession, error) {
	sealed, err := r.storage.sealer.Seal(session.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("seal access token: %w", err)
	}

	const query = `INSERT INTO shop_sessions (shop, access_token_enc, scope) VALUES ($1, $2, $3)
                   ON CONFLICT (shop) DO UPDATE
                   SET access_token_enc = EXCLUDED.access_token_enc,
                       scope = EXCLUDED.scope,
                       updated_at = NOW()
                   RETURNING created_at, updated_at`
	saved := session
	if err := r.storage.pool.QueryRow(ctx, query, session.Shop, sealed, session.Scope).Scan(&saved.CreatedAt, &saved.UpdatedAt); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *sessionRepository) Get(ctx context.Context, shop string) (*model.ShopSession, error) {
	const query = `SELECT shop, access_token_enc, scope, created_at, updated_at FROM shop_sessions WHERE shop=$1`
	var (
		s      model.ShopSession
		sealed string
	)
	err := r.storage.pool.QueryRow(ctx, query, shop).Scan(&s.Shop, &sealed, &s.Scope, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if s.AccessToken, err = r.storage.sealer.Open(sealed); err != nil {
		return nil, fmt.Errorf("open access token for %s: %w", shop, err)
	}
	return &s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, shop string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM shop_sessions WHERE shop=$1`, shop)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM logistics_credentials WHERE shop=$1`, shop); err != nil {
			return err
		}
		return nil
	})
}

// --- CredentialStore implementation ---

func (c *credentialStore) Get(ctx context.Context, shop string) (string, error) {
	const query = `SELECT token_enc FROM logistics_credentials WHERE shop=$1`
	var sealed string
	if err := c.storage.pool.QueryRow(ctx, query, shop).Scan(&sealed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	token, err := c.storage.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("open logistics token for %s: %w", shop, err)
	}
	return token, nil
}

func (c *credentialStore) Set(ctx context.Context, shop, token string) error {
	sealed, err := c.storage.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("seal logistics token: %w", err)
	}
	const query = `INSERT INTO logistics_credentials (shop, token_enc) VALUES ($1, $2)
                   ON CONFLICT (shop) DO UPDATE
                   SET token_enc = EXCLUDED.token_enc, updated_at = NOW()`
	if _, err := c.storage.pool.Exec(ctx, query, shop, sealed); err != nil {
		return err
	}
	c.storage.logger.Info("logistics credential stored", slog.String("shop", shop))
	return nil
}

func (c *credentialStore) Delete(ctx context.Context, shop string) error {
	_, err := c.storage.pool.Exec(ctx, `DELETE FROM logistics_credentials WHERE shop=$1`, shop)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
