// Package list implements curated word lists: the shared catalog of official
// and public lists plus per-user copies.
package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
)

// listRepo defines the list repository interface needed by the service.
type listRepo interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	GetWithWords(ctx context.Context, id uuid.UUID) (*domain.List, error)
	Update(ctx context.Context, l *domain.List) (*domain.List, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AddWord(ctx context.Context, listID, wordID uuid.UUID) error
	RemoveWord(ctx context.Context, listID, wordID uuid.UUID) error
	CountWords(ctx context.Context, listID uuid.UUID) (int, error)
	Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error)
	AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	GetUserList(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error)
	UpdateUserListProgress(ctx context.Context, userID, listID uuid.UUID, progress int) error
	RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error)
	WordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error)
}

// userWordRepo defines the user word repository interface needed for
// progress recalculation and list fan-out.
type userWordRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)
	Add(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Actor identifies the caller for authorization checks.
type Actor struct {
	ID   uuid.UUID
	Role domain.UserRole
}

// canManage reports whether the actor may modify the list. Admins manage
// everything, owners manage their own lists, official lists are admin-only.
func (a Actor) canManage(l *domain.List) bool {
	if a.Role.IsAdmin() {
		return true
	}
	return l.OwnerID != nil && *l.OwnerID == a.ID
}

// Service implements list operations.
type Service struct {
	log       *slog.Logger
	lists     listRepo
	userWords userWordRepo
	tx        txManager
	cfg       config.DictionaryConfig
}

// NewService creates a new list service instance.
func NewService(logger *slog.Logger, lists listRepo, userWords userWordRepo, tx txManager, cfg config.DictionaryConfig) *Service {
	return &Service{
		log:       logger.With("service", "list"),
		lists:     lists,
		userWords: userWords,
		tx:        tx,
		cfg:       cfg,
	}
}
