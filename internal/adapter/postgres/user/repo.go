// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexibase/lexibase-backend/internal/adapter/postgres"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, COALESCE(name, ''), role, base_language, target_lang,
       avatar_url, created_at, updated_at, deleted_at`

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND deleted_at IS NULL`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND deleted_at IS NULL`

const getUserByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1 AND deleted_at IS NULL`

const createUserSQL = `
INSERT INTO users (id, email, username, name, password_hash, role, base_language, target_lang, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + userColumns

const updateUserSQL = `
UPDATE users
SET name = COALESCE($2, name),
    avatar_url = COALESCE($3, avatar_url),
    base_language = COALESCE($4, base_language),
    target_lang = COALESCE($5, target_lang),
    updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + userColumns

const updateRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + userColumns

const deactivateUserSQL = `
UPDATE users SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const listUsersSQL = `
SELECT ` + userColumns + `
FROM users
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const countUsersSQL = `SELECT count(*) FROM users WHERE deleted_at IS NULL`

const getPasswordHashSQL = `
SELECT password_hash FROM users WHERE email = $1 AND deleted_at IS NULL`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns an active user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns an active user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByUsername returns an active user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getUserByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// Create inserts a new user with the given bcrypt password hash and returns
// the persisted domain.User. Email and username uniqueness are enforced by
// DB constraints (mapped to domain.ErrAlreadyExists).
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.Username, u.Name, passwordHash,
		u.Role.String(), u.BaseLanguage, u.TargetLang, time.Now(),
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// Update modifies profile fields for the given user. Nil fields keep their
// current value.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, avatarURL, baseLang, targetLang *string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, updateUserSQL, id, name, avatarURL, baseLang, targetLang))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateRole changes the user's role (admin operation).
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, updateRoleSQL, id, role.String()))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Deactivate soft-deletes the user account.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deactivateUserSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns active users ordered by creation date plus the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listUsersSQL, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countUsersSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return users, total, nil
}

// GetPasswordHash returns the bcrypt hash for the user with the given email.
func (r *Repo) GetPasswordHash(ctx context.Context, email string) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var hash string
	if err := querier.QueryRow(ctx, getPasswordHashSQL, email).Scan(&hash); err != nil {
		return "", postgres.MapError(err, "user", email)
	}
	return hash, nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

const getSettingsSQL = `
SELECT user_id, daily_goal, words_per_session, new_words_per_day, timezone, updated_at
FROM user_settings
WHERE user_id = $1`

const createSettingsSQL = `
INSERT INTO user_settings (user_id, daily_goal, words_per_session, new_words_per_day, timezone)
VALUES ($1, $2, $3, $4, $5)`

const updateSettingsSQL = `
UPDATE user_settings
SET daily_goal = $2, words_per_session = $3, new_words_per_day = $4, timezone = $5, updated_at = now()
WHERE user_id = $1
RETURNING user_id, daily_goal, words_per_session, new_words_per_day, timezone, updated_at`

// GetSettings returns the settings for the given user.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSettings(querier.QueryRow(ctx, getSettingsSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return s, nil
}

// CreateSettings inserts new user settings.
func (r *Repo) CreateSettings(ctx context.Context, s *domain.UserSettings) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSettingsSQL,
		s.UserID, s.DailyGoal, s.WordsPerSession, s.NewWordsPerDay, s.Timezone)
	if err != nil {
		return postgres.MapError(err, "user_settings", s.UserID)
	}
	return nil
}

// UpdateSettings updates the settings for the given user.
func (r *Repo) UpdateSettings(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanSettings(querier.QueryRow(ctx, updateSettingsSQL,
		userID, s.DailyGoal, s.WordsPerSession, s.NewWordsPerDay, s.Timezone))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &role, &u.BaseLanguage, &u.TargetLang,
		&u.AvatarURL, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var s domain.UserSettings
	err := row.Scan(&s.UserID, &s.DailyGoal, &s.WordsPerSession, &s.NewWordsPerDay, &s.Timezone, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
