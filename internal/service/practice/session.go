package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Session is a batch of words to practice: due reviews first, then new words.
type Session struct {
	Words    []domain.UserWord
	DueCount int
	NewCount int
}

// StartSession assembles a practice session for the user. Due words are
// taken first up to the per-session size from the user's settings; the
// remainder is filled with new words up to the daily new-word allowance.
func (s *Service) StartSession(ctx context.Context, userID uuid.UUID) (*Session, error) {
	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("practice.StartSession settings: %w", err)
	}

	size := settings.WordsPerSession
	if size <= 0 || size > s.cfg.SessionSizeMax {
		size = s.cfg.SessionSizeMax
	}

	now := s.now()

	due, err := s.userWords.ListDue(ctx, userID, now, size)
	if err != nil {
		return nil, fmt.Errorf("practice.StartSession due: %w", err)
	}

	session := &Session{
		Words:    due,
		DueCount: len(due),
	}

	remaining := size - len(due)
	if remaining > 0 && settings.NewWordsPerDay > 0 {
		allowance := settings.NewWordsPerDay
		if allowance > remaining {
			allowance = remaining
		}
		fresh, err := s.userWords.ListNew(ctx, userID, allowance)
		if err != nil {
			return nil, fmt.Errorf("practice.StartSession new: %w", err)
		}
		session.Words = append(session.Words, fresh...)
		session.NewCount = len(fresh)
	}

	s.log.DebugContext(ctx, "session assembled",
		slog.String("user_id", userID.String()),
		slog.Int("due", session.DueCount),
		slog.Int("new", session.NewCount))

	return session, nil
}

// SubmitAnswer records one answered question: the user word's progress and
// the review log entry are written in one transaction.
func (s *Service) SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*domain.UserWord, error) {
	now := s.now()

	var updated *domain.UserWord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		uw, err := s.userWords.Get(txCtx, userID, wordID)
		if err != nil {
			return fmt.Errorf("get user word: %w", err)
		}

		applyAnswer(uw, correct, now, s.cfg)

		updated, err = s.userWords.UpdateProgress(txCtx, uw)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}

		if _, err := s.reviews.Create(txCtx, &domain.ReviewLog{
			UserID:     userID,
			WordID:     wordID,
			Correct:    correct,
			AnsweredAt: now,
		}); err != nil {
			return fmt.Errorf("append review log: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("practice.SubmitAnswer: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("practice.SubmitAnswer: %w", err)
	}

	return updated, nil
}
