package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/service/practice"
)

func TestPracticeHandler_StartSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	h := NewPracticeHandler(&practiceServiceMock{
		StartSessionFunc: func(_ context.Context, id uuid.UUID) (*practice.Session, error) {
			if id != userID {
				t.Errorf("user id: got=%s, want=%s", id, userID)
			}
			return &practice.Session{
				Words: []domain.UserWord{
					*testUserWord(userID, uuid.New()),
					*testUserWord(userID, uuid.New()),
				},
				DueCount: 1,
				NewCount: 1,
			}, nil
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.StartSession(rec, authedRequest(http.MethodPost, "/v1/practice/session", "", userID, domain.UserRoleUser))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp sessionResponse
	decodeBody(t, rec, &resp)
	if len(resp.Words) != 2 || resp.DueCount != 1 || resp.NewCount != 1 {
		t.Errorf("session: got=%+v", resp)
	}
}

func TestPracticeHandler_StartSession_RequiresUser(t *testing.T) {
	t.Parallel()

	h := NewPracticeHandler(&practiceServiceMock{}, testLogger())

	rec := httptest.NewRecorder()
	h.StartSession(rec, anonRequest(http.MethodPost, "/v1/practice/session", ""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d, want=401", rec.Code)
	}
}

func TestPracticeHandler_SubmitAnswer(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	wordID := uuid.New()

	h := NewPracticeHandler(&practiceServiceMock{
		SubmitAnswerFunc: func(_ context.Context, uID, wID uuid.UUID, correct bool) (*domain.UserWord, error) {
			if uID != userID || wID != wordID {
				t.Errorf("args: got=%s/%s", uID, wID)
			}
			if !correct {
				t.Error("expected correct=true")
			}
			uw := testUserWord(userID, wordID)
			uw.Status = domain.LearningStatusInProgress
			uw.ReviewCount = 1
			uw.Progress = 17
			return uw, nil
		},
	}, testLogger())

	body := `{"wordId":"` + wordID.String() + `","correct":true}`
	rec := httptest.NewRecorder()
	h.SubmitAnswer(rec, authedRequest(http.MethodPost, "/v1/practice/answer", body, userID, domain.UserRoleUser))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp userWordResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "IN_PROGRESS" || resp.Progress != 17 {
		t.Errorf("body: got=%+v", resp)
	}
}

func TestPracticeHandler_SubmitAnswer_NotInCollection(t *testing.T) {
	t.Parallel()

	h := NewPracticeHandler(&practiceServiceMock{
		SubmitAnswerFunc: func(_ context.Context, _, _ uuid.UUID, _ bool) (*domain.UserWord, error) {
			return nil, domain.ErrNotFound
		},
	}, testLogger())

	body := `{"wordId":"` + uuid.NewString() + `","correct":false}`
	rec := httptest.NewRecorder()
	h.SubmitAnswer(rec, authedRequest(http.MethodPost, "/v1/practice/answer", body, uuid.New(), domain.UserRoleUser))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got=%d, want=404", rec.Code)
	}
}

func TestPracticeHandler_Dashboard(t *testing.T) {
	t.Parallel()

	h := NewPracticeHandler(&practiceServiceMock{
		DashboardFunc: func(_ context.Context, _ uuid.UUID) (*domain.Dashboard, error) {
			return &domain.Dashboard{
				DueCount:      3,
				NewCount:      5,
				ReviewedToday: 12,
				DayStreak:     4,
				StatusCounts: domain.StatusCounts{
					New:        5,
					InProgress: 7,
					Learned:    2,
					Mastered:   1,
					Total:      15,
				},
			}, nil
		},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, authedRequest(http.MethodGet, "/v1/practice/dashboard", "", uuid.New(), domain.UserRoleUser))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d, want=200", rec.Code)
	}

	var resp dashboardResponse
	decodeBody(t, rec, &resp)
	if resp.DueCount != 3 || resp.DayStreak != 4 {
		t.Errorf("dashboard: got=%+v", resp)
	}
	if resp.StatusCounts.Total != 15 || resp.StatusCounts.InProgress != 7 {
		t.Errorf("status counts: got=%+v", resp.StatusCounts)
	}
}
