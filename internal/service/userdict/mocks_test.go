package userdict

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

var _ userWordRepo = &userWordRepoMock{}

type userWordRepoMock struct {
	AddFunc         func(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	GetFunc         func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	CustomizeFunc   func(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error)
	RemoveFunc      func(ctx context.Context, userID, wordID uuid.UUID) error
	RestoreFunc     func(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	CountActiveFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)

	calls struct {
		Add         int
		CountActive int
	}
}

func (m *userWordRepoMock) Add(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	m.calls.Add++
	return m.AddFunc(ctx, uw)
}

func (m *userWordRepoMock) Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.GetFunc(ctx, userID, wordID)
}

func (m *userWordRepoMock) Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error) {
	return m.CustomizeFunc(ctx, userID, wordID, definition, difficulty)
}

func (m *userWordRepoMock) Remove(ctx context.Context, userID, wordID uuid.UUID) error {
	return m.RemoveFunc(ctx, userID, wordID)
}

func (m *userWordRepoMock) Restore(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	return m.RestoreFunc(ctx, userID, wordID)
}

func (m *userWordRepoMock) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	m.calls.CountActive++
	return m.CountActiveFunc(ctx, userID)
}

func (m *userWordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error) {
	return m.ListFunc(ctx, userID, filter)
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

func (m *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.GetByIDFunc(ctx, id)
}
