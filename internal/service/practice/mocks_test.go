package practice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

var _ userWordRepo = &userWordRepoMock{}

type userWordRepoMock struct {
	GetFunc            func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	UpdateProgressFunc func(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	ListDueFunc        func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.UserWord, error)
	ListNewFunc        func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserWord, error)
	CountDueFunc       func(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	StatusCountsFunc   func(ctx context.Context, userID uuid.UUID) (domain.StatusCounts, error)

	calls struct {
		UpdateProgress int
		ListNew        int
	}
}

func (m *userWordRepoMock) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.GetFunc(ctx, userID, wordID)
}

func (m *userWordRepoMock) UpdateProgress(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	m.calls.UpdateProgress++
	return m.UpdateProgressFunc(ctx, uw)
}

func (m *userWordRepoMock) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.UserWord, error) {
	return m.ListDueFunc(ctx, userID, now, limit)
}

func (m *userWordRepoMock) ListNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.UserWord, error) {
	m.calls.ListNew++
	return m.ListNewFunc(ctx, userID, limit)
}

func (m *userWordRepoMock) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	return m.CountDueFunc(ctx, userID, now)
}

func (m *userWordRepoMock) StatusCounts(ctx context.Context, userID uuid.UUID) (domain.StatusCounts, error) {
	return m.StatusCountsFunc(ctx, userID)
}

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc     func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	ReviewDaysFunc func(ctx context.Context, userID uuid.UUID, timezone string, since time.Time) ([]domain.DayReviewCount, error)

	calls struct {
		Create int
	}
}

func (m *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	m.calls.Create++
	return m.CreateFunc(ctx, log)
}

func (m *reviewLogRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return m.CountSinceFunc(ctx, userID, since)
}

func (m *reviewLogRepoMock) ReviewDays(ctx context.Context, userID uuid.UUID, timezone string, since time.Time) ([]domain.DayReviewCount, error) {
	return m.ReviewDaysFunc(ctx, userID, timezone, since)
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetSettingsFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

func (m *settingsRepoMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	return m.GetSettingsFunc(ctx, userID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
