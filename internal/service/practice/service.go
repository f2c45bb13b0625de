// Package practice implements spaced-repetition sessions: picking due and
// new words, folding answers into learning progress and the dashboard.
package practice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// userWordRepo defines the user word repository interface needed by the service.
type userWordRepo interface {
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	UpdateProgress(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.UserWord, error)
	ListNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserWord, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	StatusCounts(ctx context.Context, userID uuid.UUID) (domain.StatusCounts, error)
}

// reviewLogRepo defines the review log repository interface needed by the service.
type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ReviewDays(ctx context.Context, userID uuid.UUID, timezone string, since time.Time) ([]domain.DayReviewCount, error)
}

// settingsRepo defines the settings repository interface needed by the service.
type settingsRepo interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements practice operations.
type Service struct {
	log       *slog.Logger
	userWords userWordRepo
	reviews   reviewLogRepo
	settings  settingsRepo
	tx        txManager
	cfg       config.PracticeConfig

	// now is swapped in tests.
	now func() time.Time
}

// NewService creates a new practice service instance.
func NewService(
	logger *slog.Logger,
	userWords userWordRepo,
	reviews reviewLogRepo,
	settings settingsRepo,
	tx txManager,
	cfg config.PracticeConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "practice"),
		userWords: userWords,
		reviews:   reviews,
		settings:  settings,
		tx:        tx,
		cfg:       cfg,
		now:       time.Now,
	}
}
