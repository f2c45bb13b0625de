package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authedRequest builds a request carrying an authenticated user context.
func authedRequest(method, target, body string, userID uuid.UUID, role domain.UserRole) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	ctx := ctxutil.WithUserID(req.Context(), userID)
	ctx = ctxutil.WithUserRole(ctx, role.String())
	return req.WithContext(ctx)
}

func anonRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, rd)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func testWord(id uuid.UUID) *domain.Word {
	return &domain.Word{
		ID:           id,
		Text:         "hund",
		LanguageCode: "da",
		Difficulty:   domain.DifficultyBeginner,
		Source:       domain.WordSourceAdmin,
		CreatedAt:    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func testUser(id uuid.UUID, role domain.UserRole) *domain.User {
	return &domain.User{
		ID:           id,
		Email:        "soren@example.com",
		Username:     "soren",
		Name:         "Søren",
		Role:         role,
		BaseLanguage: "ru",
		TargetLang:   "da",
		CreatedAt:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}
