package dictionary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc              func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByTextFunc           func(ctx context.Context, normalized, languageCode string) (*domain.Word, error)
	UpdateFunc              func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	SoftDeleteFunc          func(ctx context.Context, id uuid.UUID) error
	RestoreFunc             func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	HardDeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	ListFunc                func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	SetDefinitionsFunc      func(ctx context.Context, wordID uuid.UUID, defs []domain.Definition) error
	SetSynonymsFunc         func(ctx context.Context, wordID uuid.UUID, synonyms []string) error
	SetTranslationsFunc     func(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) error

	calls struct {
		Create          int
		Update          int
		SetDefinitions  int
		SetSynonyms     int
		SetTranslations int
	}
}

func (m *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	m.calls.Create++
	return m.CreateFunc(ctx, w)
}

func (m *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *wordRepoMock) GetByText(ctx context.Context, normalized, languageCode string) (*domain.Word, error) {
	return m.GetByTextFunc(ctx, normalized, languageCode)
}

func (m *wordRepoMock) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	m.calls.Update++
	return m.UpdateFunc(ctx, w)
}

func (m *wordRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *wordRepoMock) Restore(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.RestoreFunc(ctx, id)
}

func (m *wordRepoMock) HardDeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return m.HardDeleteOlderThanFunc(ctx, cutoff)
}

func (m *wordRepoMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	return m.ListFunc(ctx, filter)
}

func (m *wordRepoMock) SetDefinitions(ctx context.Context, wordID uuid.UUID, defs []domain.Definition) error {
	m.calls.SetDefinitions++
	return m.SetDefinitionsFunc(ctx, wordID, defs)
}

func (m *wordRepoMock) SetSynonyms(ctx context.Context, wordID uuid.UUID, synonyms []string) error {
	m.calls.SetSynonyms++
	return m.SetSynonymsFunc(ctx, wordID, synonyms)
}

func (m *wordRepoMock) SetTranslations(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) error {
	m.calls.SetTranslations++
	return m.SetTranslationsFunc(ctx, wordID, translations)
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
