package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	baseLang := input.BaseLanguage
	if baseLang == "" {
		baseLang = "en"
	}
	targetLang := input.TargetLang
	if targetLang == "" {
		targetLang = "da"
	}

	// Email and username uniqueness are enforced by DB constraints.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Username:     input.Username,
			Name:         input.Username,
			Role:         domain.UserRoleUser,
			BaseLanguage: baseLang,
			TargetLang:   targetLang,
		}

		user, err := s.users.Create(txCtx, newUser, string(hash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		settings := domain.DefaultUserSettings(user.ID)
		if err := s.users.CreateSettings(txCtx, &settings); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()))

	return result, nil
}
