package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/service/practice"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
)

// practiceService defines the spaced repetition interface needed by
// PracticeHandler.
type practiceService interface {
	StartSession(ctx context.Context, userID uuid.UUID) (*practice.Session, error)
	SubmitAnswer(ctx context.Context, userID, wordID uuid.UUID, correct bool) (*domain.UserWord, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*domain.Dashboard, error)
}

// PracticeHandler serves the practice endpoints.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

type sessionResponse struct {
	Words    []userWordResponse `json:"words"`
	DueCount int                `json:"dueCount"`
	NewCount int                `json:"newCount"`
}

// StartSession handles POST /v1/practice/session.
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	session, err := h.svc.StartSession(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Words:    toUserWordResponses(session.Words),
		DueCount: session.DueCount,
		NewCount: session.NewCount,
	})
}

type answerRequest struct {
	WordID  string `json:"wordId"`
	Correct bool   `json:"correct"`
}

// SubmitAnswer handles POST /v1/practice/answer.
func (h *PracticeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	uw, err := h.svc.SubmitAnswer(r.Context(), userID, wordID, req.Correct)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserWordResponse(uw))
}

type statusCountsResponse struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Learned    int `json:"learned"`
	Mastered   int `json:"mastered"`
	Total      int `json:"total"`
}

type dashboardResponse struct {
	DueCount      int                  `json:"dueCount"`
	NewCount      int                  `json:"newCount"`
	ReviewedToday int                  `json:"reviewedToday"`
	DayStreak     int                  `json:"dayStreak"`
	StatusCounts  statusCountsResponse `json:"statusCounts"`
}

// Dashboard handles GET /v1/practice/dashboard.
func (h *PracticeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		DueCount:      d.DueCount,
		NewCount:      d.NewCount,
		ReviewedToday: d.ReviewedToday,
		DayStreak:     d.DayStreak,
		StatusCounts: statusCountsResponse{
			New:        d.StatusCounts.New,
			InProgress: d.StatusCounts.InProgress,
			Learned:    d.StatusCounts.Learned,
			Mastered:   d.StatusCounts.Mastered,
			Total:      d.StatusCounts.Total,
		},
	})
}
