package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// CreateList creates a user-owned or, for admins, an official list.
func (s *Service) CreateList(ctx context.Context, actor Actor, input CreateListInput) (*domain.List, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Official && !actor.Role.IsAdmin() {
		return nil, fmt.Errorf("list.CreateList: official lists are admin-only: %w", domain.ErrForbidden)
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyIntermediate
	}

	l := &domain.List{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Difficulty:  difficulty,
		IsPublic:    input.IsPublic,
		CoverURL:    input.CoverURL,
	}
	if !input.Official {
		ownerID := actor.ID
		l.OwnerID = &ownerID
	}

	created, err := s.lists.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list.CreateList: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("list_id", created.ID.String()),
		slog.Bool("official", created.IsOfficial()))

	return created, nil
}

// GetList returns a list with its member words.
// Private lists are visible only to their owner and admins.
func (s *Service) GetList(ctx context.Context, actor Actor, id uuid.UUID) (*domain.List, error) {
	l, err := s.lists.GetWithWords(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list.GetList: %w", err)
	}
	if !l.IsPublic && !actor.canManage(l) {
		return nil, fmt.Errorf("list.GetList: %w", domain.ErrForbidden)
	}
	return l, nil
}

// UpdateList applies a partial update. Only the owner or an admin may update.
func (s *Service) UpdateList(ctx context.Context, actor Actor, id uuid.UUID, input UpdateListInput) (*domain.List, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list.UpdateList: %w", err)
	}
	if !actor.canManage(l) {
		return nil, fmt.Errorf("list.UpdateList: %w", domain.ErrForbidden)
	}

	if input.Name != nil {
		l.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		l.Description = input.Description
	}
	if input.Difficulty != nil {
		l.Difficulty = *input.Difficulty
	}
	if input.IsPublic != nil {
		l.IsPublic = *input.IsPublic
	}
	if input.CoverURL != nil {
		l.CoverURL = input.CoverURL
	}

	updated, err := s.lists.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("list.UpdateList: %w", err)
	}
	return updated, nil
}

// DeleteList soft-deletes a list. Only the owner or an admin may delete.
func (s *Service) DeleteList(ctx context.Context, actor Actor, id uuid.UUID) error {
	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("list.DeleteList: %w", err)
	}
	if !actor.canManage(l) {
		return fmt.Errorf("list.DeleteList: %w", domain.ErrForbidden)
	}

	if err := s.lists.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("list.DeleteList: %w", err)
	}
	s.log.InfoContext(ctx, "list deleted", slog.String("list_id", id.String()))
	return nil
}

// AddWordToList adds a catalog word to a list, bounded by the per-list cap.
// Adding an existing member is a no-op.
func (s *Service) AddWordToList(ctx context.Context, actor Actor, listID, wordID uuid.UUID) error {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return fmt.Errorf("list.AddWordToList: %w", err)
	}
	if !actor.canManage(l) {
		return fmt.Errorf("list.AddWordToList: %w", domain.ErrForbidden)
	}

	count, err := s.lists.CountWords(ctx, listID)
	if err != nil {
		return fmt.Errorf("list.AddWordToList count: %w", err)
	}
	if count >= s.cfg.MaxWordsPerList {
		return fmt.Errorf("list.AddWordToList: list limit of %d words reached: %w",
			s.cfg.MaxWordsPerList, domain.ErrConflict)
	}

	if err := s.lists.AddWord(ctx, listID, wordID); err != nil {
		return fmt.Errorf("list.AddWordToList: %w", err)
	}
	return nil
}

// RemoveWordFromList removes a member word from a list.
func (s *Service) RemoveWordFromList(ctx context.Context, actor Actor, listID, wordID uuid.UUID) error {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return fmt.Errorf("list.RemoveWordFromList: %w", err)
	}
	if !actor.canManage(l) {
		return fmt.Errorf("list.RemoveWordFromList: %w", domain.ErrForbidden)
	}

	if err := s.lists.RemoveWord(ctx, listID, wordID); err != nil {
		return fmt.Errorf("list.RemoveWordFromList: %w", err)
	}
	return nil
}

// Browse returns a catalog page of public and official lists.
func (s *Service) Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	lists, total, err := s.lists.Browse(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list.Browse: %w", err)
	}
	return lists, total, nil
}
