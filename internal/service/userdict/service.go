// Package userdict implements the per-user word collection: adding catalog
// words, customizing and removing them.
package userdict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// userWordRepo defines the user word repository interface needed by the service.
type userWordRepo interface {
	Add(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
	Get(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error)
	Remove(ctx context.Context, userID, wordID uuid.UUID) error
	Restore(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)
}

// wordRepo defines the word repository interface needed by the service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

// Service implements user dictionary operations.
type Service struct {
	log       *slog.Logger
	userWords userWordRepo
	words     wordRepo
	cfg       config.DictionaryConfig
}

// NewService creates a new userdict service instance.
func NewService(logger *slog.Logger, userWords userWordRepo, words wordRepo, cfg config.DictionaryConfig) *Service {
	return &Service{
		log:       logger.With("service", "userdict"),
		userWords: userWords,
		words:     words,
		cfg:       cfg,
	}
}

// AddWord adds a catalog word to the user's dictionary.
// Returns ErrNotFound when the word does not exist, ErrAlreadyExists when it
// is already in the dictionary and ErrConflict when the per-user cap is hit.
// Re-adding a previously removed word revives the old row with its progress.
func (s *Service) AddWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, fmt.Errorf("userdict.AddWord get word: %w", err)
	}

	count, err := s.userWords.CountActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("userdict.AddWord count: %w", err)
	}
	if count >= s.cfg.MaxWordsPerUser {
		return nil, fmt.Errorf("userdict.AddWord: dictionary limit of %d words reached: %w",
			s.cfg.MaxWordsPerUser, domain.ErrConflict)
	}

	uw, err := s.userWords.Add(ctx, &domain.UserWord{
		UserID: userID,
		WordID: wordID,
		Status: domain.LearningStatusNew,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("userdict.AddWord: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("userdict.AddWord: %w", err)
	}

	s.log.InfoContext(ctx, "word added to dictionary",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))

	return uw, nil
}

// GetWord returns one user word with its catalog word attached.
func (s *Service) GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	uw, err := s.userWords.Get(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("userdict.GetWord: %w", err)
	}
	if uw.Word == nil {
		word, err := s.words.GetByID(ctx, wordID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("userdict.GetWord load word: %w", err)
		}
		uw.Word = word
	}
	return uw, nil
}

// ListWords returns a page of the user's dictionary plus the total count.
func (s *Service) ListWords(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	words, total, err := s.userWords.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("userdict.ListWords: %w", err)
	}
	return words, total, nil
}

// Customize sets or clears the user's own definition and difficulty override.
// Passing nil for a field clears the override.
func (s *Service) Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error) {
	if definition != nil && len(*definition) > 2000 {
		return nil, domain.NewValidationError("custom_definition", "too long")
	}
	if difficulty != nil && !difficulty.IsValid() {
		return nil, domain.NewValidationError("custom_difficulty", "invalid value")
	}

	uw, err := s.userWords.Customize(ctx, userID, wordID, definition, difficulty)
	if err != nil {
		return nil, fmt.Errorf("userdict.Customize: %w", err)
	}
	return uw, nil
}

// RemoveWord removes a word from the user's dictionary. Progress is kept and
// revives if the word is re-added.
func (s *Service) RemoveWord(ctx context.Context, userID, wordID uuid.UUID) error {
	if err := s.userWords.Remove(ctx, userID, wordID); err != nil {
		return fmt.Errorf("userdict.RemoveWord: %w", err)
	}
	return nil
}

// RestoreWord reverses a removal, subject to the per-user cap.
func (s *Service) RestoreWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error) {
	count, err := s.userWords.CountActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("userdict.RestoreWord count: %w", err)
	}
	if count >= s.cfg.MaxWordsPerUser {
		return nil, fmt.Errorf("userdict.RestoreWord: dictionary limit of %d words reached: %w",
			s.cfg.MaxWordsPerUser, domain.ErrConflict)
	}

	uw, err := s.userWords.Restore(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("userdict.RestoreWord: %w", err)
	}
	return uw, nil
}
