package list

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// AddToUser adds a list to the user's collection. The list must be public,
// official or owned by the user. Re-adding a removed list revives the old
// copy with its custom name and progress. Every member word is added to the
// user's dictionary in the same transaction so it enters practice rotation;
// words the user already has keep their state.
func (s *Service) AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list.AddToUser: %w", err)
	}
	if !l.IsPublic && !(l.OwnerID != nil && *l.OwnerID == userID) {
		return nil, fmt.Errorf("list.AddToUser: %w", domain.ErrForbidden)
	}

	var ul *domain.UserList
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ul, err = s.lists.AddToUser(txCtx, userID, listID)
		if err != nil {
			return err
		}

		wordIDs, err := s.lists.WordIDs(txCtx, listID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		for _, wordID := range wordIDs {
			_, err := s.userWords.Add(txCtx, &domain.UserWord{UserID: userID, WordID: wordID})
			if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("add member word %s: %w", wordID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list.AddToUser: %w", err)
	}
	return ul, nil
}

// MyLists returns all lists in the user's collection with word counts.
func (s *Service) MyLists(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error) {
	lists, err := s.lists.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list.MyLists: %w", err)
	}
	return lists, nil
}

// RenameUserList renames the user's copy of a list without touching the
// shared list. Nil fields clear the override back to the shared name.
func (s *Service) RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	ul, err := s.lists.RenameUserList(ctx, userID, listID, name, description)
	if err != nil {
		return nil, fmt.Errorf("list.RenameUserList: %w", err)
	}
	return ul, nil
}

// RemoveFromUser removes a list from the user's collection.
func (s *Service) RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error {
	if err := s.lists.RemoveFromUser(ctx, userID, listID); err != nil {
		return fmt.Errorf("list.RemoveFromUser: %w", err)
	}
	return nil
}

// RefreshProgress recomputes the user's progress on a list as the share of
// member words they have learned or mastered, and persists it.
func (s *Service) RefreshProgress(ctx context.Context, userID, listID uuid.UUID) (int, error) {
	total, err := s.lists.CountWords(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("list.RefreshProgress count: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	members, _, err := s.userWords.List(ctx, userID, domain.UserWordFilter{
		ListID: &listID,
		Limit:  total,
	})
	if err != nil {
		return 0, fmt.Errorf("list.RefreshProgress members: %w", err)
	}

	learned := 0
	for _, uw := range members {
		if uw.Status == domain.LearningStatusLearned || uw.Status == domain.LearningStatusMastered {
			learned++
		}
	}

	progress := learned * 100 / total
	if err := s.lists.UpdateUserListProgress(ctx, userID, listID, progress); err != nil {
		return 0, fmt.Errorf("list.RefreshProgress update: %w", err)
	}
	return progress, nil
}
