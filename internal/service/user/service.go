// Package user implements profile and settings management plus the admin
// operations on accounts.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name, avatarURL, baseLang, targetLang *string) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error)
}

// tokenRepo defines the refresh-token repository interface needed by the user
// service.
type tokenRepo interface {
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the user
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Actor is the authenticated caller of an admin operation.
type Actor struct {
	ID   uuid.UUID
	Role domain.UserRole
}

// Service implements user profile, settings and admin operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		tx:     tx,
	}
}
