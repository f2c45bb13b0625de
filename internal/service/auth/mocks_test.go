package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
)

// Hand-written func-field mocks. A nil Func panics, which surfaces
// unexpected calls as test failures.

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc          func(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetPasswordHashFunc func(ctx context.Context, email string) (string, error)
	CreateSettingsFunc  func(ctx context.Context, s *domain.UserSettings) error

	calls struct {
		GetByID         int
		GetByEmail      int
		Create          int
		GetPasswordHash int
		CreateSettings  int
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.calls.GetByID++
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.calls.GetByEmail++
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	m.calls.Create++
	return m.CreateFunc(ctx, u, passwordHash)
}

func (m *userRepoMock) GetPasswordHash(ctx context.Context, email string) (string, error) {
	m.calls.GetPasswordHash++
	return m.GetPasswordHashFunc(ctx, email)
}

func (m *userRepoMock) CreateSettings(ctx context.Context, s *domain.UserSettings) error {
	m.calls.CreateSettings++
	return m.CreateSettingsFunc(ctx, s)
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHashFunc        func(ctx context.Context, hash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, hash string) error
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create           int
		GetByHash        int
		Revoke           int
		RevokeAllForUser int
	}
}

func (m *tokenRepoMock) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	m.calls.Create++
	return m.CreateFunc(ctx, t)
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	m.calls.GetByHash++
	return m.GetByHashFunc(ctx, hash)
}

func (m *tokenRepoMock) Revoke(ctx context.Context, hash string) error {
	m.calls.Revoke++
	return m.RevokeFunc(ctx, hash)
}

func (m *tokenRepoMock) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	m.calls.RevokeAllForUser++
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

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return m.GenerateAccessTokenFunc(userID, role)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	return m.GenerateRefreshTokenFunc()
}

func staticJWT() *jwtManagerMock {
	return &jwtManagerMock{
		GenerateAccessTokenFunc: func(uuid.UUID, string) (string, error) {
			return "access_token_123", nil
		},
		GenerateRefreshTokenFunc: func() (string, string, error) {
			return "raw_refresh_123", "hash_refresh_123", nil
		},
	}
}
