package practice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// streakWindow bounds how far back the day streak is computed.
const streakWindow = 366 * 24 * time.Hour

// Dashboard aggregates the user's practice statistics: due and new counts,
// reviews done today in the user's timezone, the consecutive-day streak and
// the per-status breakdown.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error) {
	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("practice.Dashboard settings: %w", err)
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.UTC
	}

	now := s.now()
	localNow := now.In(loc)
	startOfDay := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)

	dueCount, err := s.userWords.CountDue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("practice.Dashboard due: %w", err)
	}

	counts, err := s.userWords.StatusCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("practice.Dashboard counts: %w", err)
	}

	reviewedToday, err := s.reviews.CountSince(ctx, userID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("practice.Dashboard reviewed today: %w", err)
	}

	days, err := s.reviews.ReviewDays(ctx, userID, settings.Timezone, now.Add(-streakWindow))
	if err != nil {
		return nil, fmt.Errorf("practice.Dashboard review days: %w", err)
	}

	// ReviewDays returns dates at UTC midnight of the local calendar day.
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC)

	return &domain.Dashboard{
		DueCount:      dueCount,
		NewCount:      counts.New,
		ReviewedToday: reviewedToday,
		DayStreak:     dayStreak(days, today),
		StatusCounts:  counts,
	}, nil
}
