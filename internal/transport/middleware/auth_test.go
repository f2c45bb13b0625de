package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/pkg/ctxutil"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)

	mu    sync.Mutex
	calls int
}

func (m *tokenValidatorMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.ValidateAccessTokenFunc(token)
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			if token == "valid-token" {
				return userID, "admin", nil
			}
			return uuid.Nil, "", errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			t.Error("expected userID in context")
			return
		}
		if gotUserID != userID {
			t.Errorf("expected userID %v, got %v", userID, gotUserID)
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			t.Error("expected admin role in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrappedHandler := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			return uuid.Nil, "", errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	wrappedHandler := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_NoAuthHeader(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, string, error) {
			t.Error("ValidateAccessToken should not be called when no header present")
			return uuid.Nil, "", errors.New("should not be called")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ctxutil.UserIDFromCtx(r.Context())
		if ok {
			t.Error("expected no userID in context for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrappedHandler := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if validator.calls > 0 {
		t.Error("ValidateAccessToken should not be called for anonymous request")
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestRequireUser(t *testing.T) {
	userID := uuid.New()

	ctx := ctxutil.WithUserID(context.Background(), userID)
	got, err := RequireUser(ctx)
	if err != nil {
		t.Fatalf("RequireUser returned error: %v", err)
	}
	if got != userID {
		t.Errorf("userID: got=%v, want=%v", got, userID)
	}

	if _, err := RequireUser(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous error: got=%v, want=ErrUnauthorized", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	userID := uuid.New()

	adminCtx := ctxutil.WithUserRole(ctxutil.WithUserID(context.Background(), userID), "admin")
	if err := RequireAdmin(adminCtx); err != nil {
		t.Errorf("admin error: got=%v, want=nil", err)
	}

	userCtx := ctxutil.WithUserRole(ctxutil.WithUserID(context.Background(), userID), "user")
	if err := RequireAdmin(userCtx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("non-admin error: got=%v, want=ErrForbidden", err)
	}

	if err := RequireAdmin(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous error: got=%v, want=ErrUnauthorized", err)
	}
}
