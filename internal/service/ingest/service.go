// Package ingest imports words from external dictionaries into the catalog.
// Danish entries come from ordnet.dk, English from Merriam-Webster.
package ingest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
)

// dictionaryLookup is the shape both external dictionary clients share.
// A nil result with nil error means the word is unknown to the source.
type dictionaryLookup interface {
	Lookup(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

// wordRepo defines the word repository interface needed by the ingest service.
type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByText(ctx context.Context, normalized, languageCode string) (*domain.Word, error)
	Update(ctx context.Context, w *domain.Word) (*domain.Word, error)
	SetDefinitions(ctx context.Context, wordID uuid.UUID, defs []domain.Definition) error
	SetSynonyms(ctx context.Context, wordID uuid.UUID, synonyms []string) error
	SetTranslations(ctx context.Context, wordID uuid.UUID, translations []domain.Translation) error
}

// txManager defines the transaction manager interface needed by the ingest service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements dictionary import operations.
type Service struct {
	log     *slog.Logger
	words   wordRepo
	tx      txManager
	sources map[string]dictionaryLookup // keyed by ISO 639-1 language code
}

// NewService creates a new ingest service. Pass nil for a source to disable
// that language.
func NewService(logger *slog.Logger, words wordRepo, tx txManager, ordnet, merriam dictionaryLookup) *Service {
	sources := make(map[string]dictionaryLookup)
	if ordnet != nil {
		sources["da"] = ordnet
	}
	if merriam != nil {
		sources["en"] = merriam
	}
	return &Service{
		log:     logger.With("service", "ingest"),
		words:   words,
		tx:      tx,
		sources: sources,
	}
}
