package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// GetProfile returns the user's account.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of in to the user's account.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, userID, in.Name, in.AvatarURL, in.BaseLanguage, in.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	return u, nil
}

// GetSettings returns the user's practice settings.
func (s *Service) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.users.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies the non-nil fields of in to the user's practice
// settings.
func (s *Service) UpdateSettings(ctx context.Context, userID uuid.UUID, in UpdateSettingsInput) (*domain.UserSettings, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	next := *current
	if in.DailyGoal != nil {
		next.DailyGoal = *in.DailyGoal
	}
	if in.WordsPerSession != nil {
		next.WordsPerSession = *in.WordsPerSession
	}
	if in.NewWordsPerDay != nil {
		next.NewWordsPerDay = *in.NewWordsPerDay
	}
	if in.Timezone != nil {
		next.Timezone = *in.Timezone
	}

	updated, err := s.users.UpdateSettings(ctx, userID, next)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}
	return updated, nil
}
