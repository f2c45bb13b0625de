package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// CreateWord creates a catalog word with its definitions, synonyms and
// translations in one transaction.
// Returns ErrAlreadyExists when an active word with the same normalized text
// exists in the same language.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyIntermediate
	}
	source := input.Source
	if source == "" {
		source = domain.WordSourceAdmin
	}

	var created *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word := &domain.Word{
			ID:             uuid.New(),
			Text:           text,
			TextNormalized: domain.NormalizeText(text),
			LanguageCode:   input.LanguageCode,
			PartOfSpeech:   input.PartOfSpeech,
			Difficulty:     difficulty,
			Phonetic:       input.Phonetic,
			AudioURL:       input.AudioURL,
			ImageURL:       input.ImageURL,
			Source:         source,
		}

		w, err := s.words.Create(txCtx, word)
		if err != nil {
			return fmt.Errorf("create word: %w", err)
		}

		if err := s.words.SetDefinitions(txCtx, w.ID, mapDefinitions(input.Definitions)); err != nil {
			return fmt.Errorf("set definitions: %w", err)
		}
		if len(input.Synonyms) > 0 {
			if err := s.words.SetSynonyms(txCtx, w.ID, input.Synonyms); err != nil {
				return fmt.Errorf("set synonyms: %w", err)
			}
		}
		if len(input.Translations) > 0 {
			if err := s.words.SetTranslations(txCtx, w.ID, mapTranslations(input.Translations)); err != nil {
				return fmt.Errorf("set translations: %w", err)
			}
		}

		created, err = s.words.GetByID(txCtx, w.ID)
		if err != nil {
			return fmt.Errorf("reload word: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("dictionary.CreateWord: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("dictionary.CreateWord: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("language", created.LanguageCode))

	return created, nil
}
