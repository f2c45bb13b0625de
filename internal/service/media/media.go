package media

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
)

// FindImage searches a stock photo for the word and stores its URL. Image
// search works best with English queries, so non-English words are searched
// by their English translation when one is available.
func (s *Service) FindImage(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if s.images == nil {
		return nil, fmt.Errorf("media.FindImage: image search not configured: %w", domain.ErrNotFound)
	}

	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("media.FindImage: %w", err)
	}

	imageURL, err := s.searchImage(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("media.FindImage %q: %w", word.Text, err)
	}

	updated, err := s.words.UpdateMedia(ctx, wordID, nil, &imageURL)
	if err != nil {
		return nil, fmt.Errorf("media.FindImage update: %w", err)
	}
	return updated, nil
}

// GenerateAudio synthesizes pronunciation audio for the word, stores the MP3
// and saves its URL.
func (s *Service) GenerateAudio(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if s.tts == nil {
		return nil, fmt.Errorf("media.GenerateAudio: speech synthesis not configured: %w", domain.ErrNotFound)
	}

	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("media.GenerateAudio: %w", err)
	}

	audioURL, err := s.synthesizeAudio(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("media.GenerateAudio %q: %w", word.Text, err)
	}

	updated, err := s.words.UpdateMedia(ctx, wordID, &audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("media.GenerateAudio update: %w", err)
	}
	return updated, nil
}

// Translate translates a phrase between two languages.
func (s *Service) Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error) {
	if s.translator == nil {
		return nil, fmt.Errorf("media.Translate: translation not configured: %w", domain.ErrNotFound)
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "must not be empty")
	}

	result, err := s.translator.Translate(ctx, text, from, to)
	if err != nil {
		return nil, fmt.Errorf("media.Translate: %w", err)
	}
	return result, nil
}

func (s *Service) searchImage(ctx context.Context, word *domain.Word) (string, error) {
	query := s.imageQuery(ctx, word)

	hits, err := s.images.Search(ctx, query, 1)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}
	if len(hits) == 0 {
		return "", fmt.Errorf("no image for %q: %w", query, domain.ErrNotFound)
	}
	return hits[0].URL, nil
}

// imageQuery picks the search term: the word itself for English, otherwise a
// stored English translation, otherwise a live translation. Falls back to the
// original text.
func (s *Service) imageQuery(ctx context.Context, word *domain.Word) string {
	if word.LanguageCode == "en" {
		return word.Text
	}

	for _, tr := range word.Translations {
		if tr.LanguageCode == "en" && tr.Text != "" {
			return tr.Text
		}
	}

	if s.translator != nil {
		result, err := s.translator.Translate(ctx, word.Text, word.LanguageCode, "en")
		if err == nil && result != nil && strings.TrimSpace(result.Text) != "" {
			return result.Text
		}
		if err != nil {
			s.log.WarnContext(ctx, "image query translation failed",
				slog.String("text", word.Text), slog.String("error", err.Error()))
		}
	}

	return word.Text
}

func (s *Service) synthesizeAudio(ctx context.Context, word *domain.Word) (string, error) {
	audio, err := s.tts.Synthesize(ctx, word.Text, word.LanguageCode)
	if err != nil {
		return "", fmt.Errorf("synthesize: %w", err)
	}

	url, err := s.store.Save(ctx, word.ID.String()+".mp3", audio.MP3)
	if err != nil {
		return "", fmt.Errorf("store audio: %w", err)
	}
	return url, nil
}
