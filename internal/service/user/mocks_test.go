package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, name, avatarURL, baseLang, targetLang *string) (*domain.User, error)
	UpdateRoleFunc     func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	DeactivateFunc     func(ctx context.Context, id uuid.UUID) error
	ListFunc           func(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	GetSettingsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettingsFunc func(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		Update     int
		UpdateRole int
		Deactivate int
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) Update(ctx context.Context, id uuid.UUID, name, avatarURL, baseLang, targetLang *string) (*domain.User, error) {
	m.calls.Update++
	return m.UpdateFunc(ctx, id, name, avatarURL, baseLang, targetLang)
}

func (m *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	m.calls.UpdateRole++
	return m.UpdateRoleFunc(ctx, id, role)
}

func (m *userRepoMock) Deactivate(ctx context.Context, id uuid.UUID) error {
	m.calls.Deactivate++
	return m.DeactivateFunc(ctx, id)
}

func (m *userRepoMock) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	return m.ListFunc(ctx, limit, offset)
}

func (m *userRepoMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	return m.GetSettingsFunc(ctx, userID)
}

func (m *userRepoMock) UpdateSettings(ctx context.Context, userID uuid.UUID, s domain.UserSettings) (*domain.UserSettings, error) {
	return m.UpdateSettingsFunc(ctx, userID, s)
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		RevokeAllForUser int
	}
}

func (m *tokenRepoMock) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	m.calls.RevokeAllForUser++
	if m.RevokeAllForUserFunc == nil {
		return nil
	}
	return m.RevokeAllForUserFunc(ctx, userID)
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
