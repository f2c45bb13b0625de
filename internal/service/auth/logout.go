package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/auth"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Logout revokes a single refresh token. Revoking an already-revoked or
// unknown token is a no-op, so logout is idempotent.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}

	hash := auth.HashToken(refreshToken)
	if err := s.tokens.Revoke(ctx, hash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

// LogoutAll revokes every refresh token the user holds.
func (s *Service) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.LogoutAll: %w", err)
	}
	return nil
}
