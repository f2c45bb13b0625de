package dictionary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// GetWord returns a catalog word with definitions, synonyms and translations.
func (s *Service) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dictionary.GetWord: %w", err)
	}
	return word, nil
}

// LookupText finds the active word with the given text in a language.
// The text is normalized before matching.
func (s *Service) LookupText(ctx context.Context, text, languageCode string) (*domain.Word, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	word, err := s.words.GetByText(ctx, normalized, languageCode)
	if err != nil {
		return nil, fmt.Errorf("dictionary.LookupText: %w", err)
	}
	return word, nil
}

// Search returns a page of catalog words matching the filter plus the total
// match count.
func (s *Service) Search(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	words, total, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("dictionary.Search: %w", err)
	}
	return words, total, nil
}
