package list

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc                 func(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	GetWithWordsFunc           func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	UpdateFunc                 func(ctx context.Context, l *domain.List) (*domain.List, error)
	SoftDeleteFunc             func(ctx context.Context, id uuid.UUID) error
	AddWordFunc                func(ctx context.Context, listID, wordID uuid.UUID) error
	RemoveWordFunc             func(ctx context.Context, listID, wordID uuid.UUID) error
	CountWordsFunc             func(ctx context.Context, listID uuid.UUID) (int, error)
	BrowseFunc                 func(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error)
	AddToUserFunc              func(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	GetUserListFunc            func(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	RenameUserListFunc         func(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error)
	UpdateUserListProgressFunc func(ctx context.Context, userID, listID uuid.UUID, progress int) error
	RemoveFromUserFunc         func(ctx context.Context, userID, listID uuid.UUID) error
	ListForUserFunc            func(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error)
	WordIDsFunc                func(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		AddWord                int
		UpdateUserListProgress int
	}
}

func (m *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	return m.CreateFunc(ctx, l)
}

func (m *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *listRepoMock) GetWithWords(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	return m.GetWithWordsFunc(ctx, id)
}

func (m *listRepoMock) Update(ctx context.Context, l *domain.List) (*domain.List, error) {
	return m.UpdateFunc(ctx, l)
}

func (m *listRepoMock) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.SoftDeleteFunc(ctx, id)
}

func (m *listRepoMock) AddWord(ctx context.Context, listID, wordID uuid.UUID) error {
	m.calls.AddWord++
	return m.AddWordFunc(ctx, listID, wordID)
}

func (m *listRepoMock) RemoveWord(ctx context.Context, listID, wordID uuid.UUID) error {
	return m.RemoveWordFunc(ctx, listID, wordID)
}

func (m *listRepoMock) CountWords(ctx context.Context, listID uuid.UUID) (int, error) {
	return m.CountWordsFunc(ctx, listID)
}

func (m *listRepoMock) Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error) {
	return m.BrowseFunc(ctx, filter)
}

func (m *listRepoMock) AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	return m.AddToUserFunc(ctx, userID, listID)
}

func (m *listRepoMock) GetUserList(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error) {
	return m.GetUserListFunc(ctx, userID, listID)
}

func (m *listRepoMock) RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error) {
	return m.RenameUserListFunc(ctx, userID, listID, name, description)
}

func (m *listRepoMock) UpdateUserListProgress(ctx context.Context, userID, listID uuid.UUID, progress int) error {
	m.calls.UpdateUserListProgress++
	return m.UpdateUserListProgressFunc(ctx, userID, listID, progress)
}

func (m *listRepoMock) RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error {
	return m.RemoveFromUserFunc(ctx, userID, listID)
}

func (m *listRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error) {
	return m.ListForUserFunc(ctx, userID)
}

func (m *listRepoMock) WordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error) {
	if m.WordIDsFunc == nil {
		return nil, nil
	}
	return m.WordIDsFunc(ctx, listID)
}

var _ userWordRepo = &userWordRepoMock{}

type userWordRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)
	AddFunc  func(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error)

	calls struct {
		Add int
	}
}

func (m *userWordRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error) {
	return m.ListFunc(ctx, userID, filter)
}

func (m *userWordRepoMock) Add(ctx context.Context, uw *domain.UserWord) (*domain.UserWord, error) {
	m.calls.Add++
	if m.AddFunc == nil {
		return uw, nil
	}
	return m.AddFunc(ctx, uw)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
