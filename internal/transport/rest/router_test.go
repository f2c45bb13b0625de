package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
)

type validatorMock struct {
	userID uuid.UUID
	role   string
	err    error
}

func (m *validatorMock) ValidateAccessToken(_ string) (uuid.UUID, string, error) {
	return m.userID, m.role, m.err
}

func routerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.AuthRatePerMin = 100
	cfg.Server.APIRatePerMinute = 1000
	cfg.CORS.AllowedOrigins = "*"
	cfg.CORS.AllowedMethods = "GET,POST,PATCH,DELETE,OPTIONS"
	cfg.CORS.AllowedHeaders = "Authorization,Content-Type"
	return cfg
}

func newTestRouter(t *testing.T, validator *validatorMock) http.Handler {
	t.Helper()

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	h := Handlers{
		Auth:  NewAuthHandler(&authServiceMock{}, testLogger()),
		Words: NewWordHandler(&dictionaryServiceMock{}, testLogger()),
		MyWords: NewMyWordsHandler(&userDictServiceMock{
			GetWordFunc: func(_ context.Context, uID, wID uuid.UUID) (*domain.UserWord, error) {
				return testUserWord(uID, wID), nil
			},
		}, testLogger()),
		Lists:    NewListHandler(&listServiceMock{}, testLogger()),
		Practice: NewPracticeHandler(&practiceServiceMock{}, testLogger()),
		Profile: NewProfileHandler(&profileServiceMock{
			GetProfileFunc: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
				return testUser(id, domain.UserRoleUser), nil
			},
		}, testLogger()),
		Admin:  newAdminHandler(nil, nil, nil, nil),
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
	}

	return NewRouter(routerConfig(), h, validator, limiter, testLogger())
}

func TestRouter_LiveProbe(t *testing.T) {
	router := newTestRouter(t, &validatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, &validatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got=%d, want=404", rec.Code)
	}
}

func TestRouter_AuthContextReachesHandler(t *testing.T) {
	userID := uuid.New()
	router := newTestRouter(t, &validatorMock{userID: userID, role: "user"})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp userResponse
	decodeBody(t, rec, &resp)
	if resp.ID != userID.String() {
		t.Errorf("user id: got=%s, want=%s", resp.ID, userID)
	}
}

func TestRouter_AnonymousNeedsAuthOnProtectedRoute(t *testing.T) {
	router := newTestRouter(t, &validatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d, want=401", rec.Code)
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter(t, &validatorMock{})

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id response header")
	}
}
