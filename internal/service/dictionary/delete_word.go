package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// DeleteWord soft-deletes a catalog word. User dictionaries referencing it
// keep their rows; the word simply disappears from search and detail reads.
func (s *Service) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if err := s.words.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("dictionary.DeleteWord: %w", err)
	}
	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}

// RestoreWord reverses a soft delete within the retention window.
func (s *Service) RestoreWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	word, err := s.words.Restore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dictionary.RestoreWord: %w", err)
	}
	s.log.InfoContext(ctx, "word restored", slog.String("word_id", id.String()))
	return word, nil
}

// PurgeDeleted permanently removes words soft-deleted longer ago than the
// configured retention window. Returns the number of purged words.
func (s *Service) PurgeDeleted(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.HardDeleteRetentionDays)

	n, err := s.words.HardDeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("dictionary.PurgeDeleted: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "purged deleted words", slog.Int64("count", n))
	}
	return n, nil
}
