package dictionary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// UpdateWord applies a partial update to a catalog word. Child collections
// are replaced only when the corresponding input slice is non-nil.
func (s *Service) UpdateWord(ctx context.Context, id uuid.UUID, input UpdateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word, err := s.words.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		if input.Text != nil {
			word.Text = strings.TrimSpace(*input.Text)
			word.TextNormalized = domain.NormalizeText(*input.Text)
		}
		if input.PartOfSpeech != nil {
			word.PartOfSpeech = input.PartOfSpeech
		}
		if input.Difficulty != nil {
			word.Difficulty = *input.Difficulty
		}
		if input.Phonetic != nil {
			word.Phonetic = input.Phonetic
		}
		if input.AudioURL != nil {
			word.AudioURL = input.AudioURL
		}
		if input.ImageURL != nil {
			word.ImageURL = input.ImageURL
		}

		if _, err := s.words.Update(txCtx, word); err != nil {
			return fmt.Errorf("update word: %w", err)
		}

		if input.Definitions != nil {
			if err := s.words.SetDefinitions(txCtx, id, mapDefinitions(input.Definitions)); err != nil {
				return fmt.Errorf("set definitions: %w", err)
			}
		}
		if input.Synonyms != nil {
			if err := s.words.SetSynonyms(txCtx, id, input.Synonyms); err != nil {
				return fmt.Errorf("set synonyms: %w", err)
			}
		}
		if input.Translations != nil {
			if err := s.words.SetTranslations(txCtx, id, mapTranslations(input.Translations)); err != nil {
				return fmt.Errorf("set translations: %w", err)
			}
		}

		updated, err = s.words.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload word: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("dictionary.UpdateWord: %w", err)
	}
	return updated, nil
}
