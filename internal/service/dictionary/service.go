// Package dictionary implements the shared word catalog: admin curation,
// search and retention cleanup.
package dictionary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// wordRepo defines the word repository interface needed by the dictionary service.
type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByText(ctx context.Context, normalized, languageCode string) (*domain.Word, error)
	Update(ctx context.Context, w *domain.Word) (*domain.Word, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	HardDeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	SetDefinitions(ctx context.Context, wordID uuid.UUID, defs []domain.Definition) error
	SetSynonyms(ctx context.Context, wordID uuid.UUID, synonyms []string) error
	SetTranslations(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) error
}

// txManager defines the transaction manager interface needed by the dictionary service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log   *slog.Logger
	words wordRepo
	tx    txManager
	cfg   config.DictionaryConfig
}

// NewService creates a new dictionary service instance.
func NewService(logger *slog.Logger, words wordRepo, tx txManager, cfg config.DictionaryConfig) *Service {
	return &Service{
		log:   logger.With("service", "dictionary"),
		words: words,
		tx:    tx,
		cfg:   cfg,
	}
}
