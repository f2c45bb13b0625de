package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexibase/lexibase-backend/internal/auth"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Refresh performs refresh token rotation and returns a new token pair.
//
// Presenting a token that was already rotated is treated as a replay: all of
// the user's refresh tokens are revoked, forcing a fresh login everywhere.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		s.log.WarnContext(ctx, "refresh token replay detected",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllForUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke all: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deactivated user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.Revoke(ctx, hash); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
