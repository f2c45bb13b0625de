// Package media finds images, synthesizes pronunciation audio and translates
// phrases for dictionary words.
package media

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
)

// imageSearcher finds stock photos for a query.
type imageSearcher interface {
	Search(ctx context.Context, query string, perPage int) ([]provider.ImageResult, error)
}

// speechSynthesizer produces MP3 audio for a text.
type speechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) (*provider.AudioResult, error)
}

// translator translates a phrase between two languages.
type translator interface {
	Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
}

// audioStore persists synthesized audio and returns a public URL.
type audioStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// wordRepo defines the word repository interface needed by the media service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, audioURL, imageURL *string) (*domain.Word, error)
	ListMissingMedia(ctx context.Context, languageCode string, limit int) ([]domain.Word, error)
}

// Service implements media lookup and batch enrichment. Any of the external
// providers may be nil when its API key is not configured; the corresponding
// operations then return ErrNotFound or skip the step.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	images     imageSearcher
	tts        speechSynthesizer
	translator translator
	store      audioStore
	cfg        config.EnrichConfig
}

// NewService creates a new media service.
func NewService(logger *slog.Logger, words wordRepo, images imageSearcher, tts speechSynthesizer, tr translator, store audioStore, cfg config.EnrichConfig) *Service {
	return &Service{
		log:        logger.With("service", "media"),
		words:      words,
		images:     images,
		tts:        tts,
		translator: tr,
		store:      store,
		cfg:        cfg,
	}
}
