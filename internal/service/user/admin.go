package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListUsers returns a page of accounts. Admin only.
func (s *Service) ListUsers(ctx context.Context, actor Actor, limit, offset int) ([]domain.User, int, error) {
	if !actor.Role.IsAdmin() {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", domain.ErrForbidden)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, total, nil
}

// ChangeRole sets the role of another account. Admin only; admins cannot
// change their own role, so the last admin cannot lock everyone out.
func (s *Service) ChangeRole(ctx context.Context, actor Actor, userID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("user.ChangeRole: %w", domain.ErrForbidden)
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}
	if actor.ID == userID {
		return nil, fmt.Errorf("user.ChangeRole: cannot change own role: %w", domain.ErrConflict)
	}

	u, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("user.ChangeRole: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return u, nil
}

// Deactivate soft-deletes an account and revokes all of its refresh tokens.
// Admin only; admins cannot deactivate themselves.
func (s *Service) Deactivate(ctx context.Context, actor Actor, userID uuid.UUID) error {
	if !actor.Role.IsAdmin() {
		return fmt.Errorf("user.Deactivate: %w", domain.ErrForbidden)
	}
	if actor.ID == userID {
		return fmt.Errorf("user.Deactivate: cannot deactivate own account: %w", domain.ErrConflict)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Deactivate(ctx, userID); err != nil {
			return err
		}
		return s.tokens.RevokeAllForUser(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("user.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "account deactivated",
		slog.String("user_id", userID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
