// Package token implements the refresh-token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh-token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createTokenSQL = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING id, user_id, token_hash, expires_at, created_at, revoked_at`

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_tokens
WHERE token_hash = $1`

const revokeSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE token_hash = $1 AND revoked_at IS NULL`

const revokeAllForUserSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < now() OR revoked_at IS NOT NULL AND revoked_at < now() - interval '7 days'`

// Create stores a new refresh token hash for the user.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.RefreshToken
	err := querier.QueryRow(ctx, createTokenSQL, t.UserID, t.TokenHash, t.ExpiresAt).Scan(
		&created.ID, &created.UserID, &created.TokenHash,
		&created.ExpiresAt, &created.CreatedAt, &created.RevokedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", t.UserID)
	}
	return &created, nil
}

// GetByHash looks up a refresh token by its SHA-256 hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.RefreshToken
	err := querier.QueryRow(ctx, getByHashSQL, hash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", hash)
	}
	return &t, nil
}

// Revoke marks the token with the given hash as revoked.
func (r *Repo) Revoke(ctx context.Context, hash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, revokeSQL, hash)
	if err != nil {
		return postgres.MapError(err, "refresh_token", hash)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh token: %w", domain.ErrNotFound)
	}
	return nil
}

// RevokeAllForUser revokes every active token belonging to the user.
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeAllForUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes expired and long-revoked tokens. Returns the number
// of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
