package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
)

// userDictService defines the personal collection interface needed by
// MyWordsHandler.
type userDictService interface {
	AddWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	GetWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
	ListWords(ctx context.Context, userID uuid.UUID, filter domain.UserWordFilter) ([]domain.UserWord, int, error)
	Customize(ctx context.Context, userID, wordID uuid.UUID, definition *string, difficulty *domain.DifficultyLevel) (*domain.UserWord, error)
	RemoveWord(ctx context.Context, userID, wordID uuid.UUID) error
	RestoreWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWord, error)
}

// MyWordsHandler serves the authenticated user's word collection.
type MyWordsHandler struct {
	svc userDictService
	log *slog.Logger
}

// NewMyWordsHandler creates a MyWordsHandler.
func NewMyWordsHandler(svc userDictService, logger *slog.Logger) *MyWordsHandler {
	return &MyWordsHandler{svc: svc, log: logger.With("handler", "mywords")}
}

type addWordRequest struct {
	WordID string `json:"wordId"`
}

// Add handles POST /v1/me/words.
func (h *MyWordsHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	uw, err := h.svc.AddWord(r.Context(), userID, wordID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserWordResponse(uw))
}

// List handles GET /v1/me/words.
// Query: q, status, listId, limit, offset.
func (h *MyWordsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	filter := domain.UserWordFilter{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if v := q.Get("q"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("status"); v != "" {
		st := domain.LearningStatus(v)
		filter.Status = &st
	}
	if v := q.Get("listId"); v != "" {
		listID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid list id")
			return
		}
		filter.ListID = &listID
	}

	words, total, err := h.svc.ListWords(r.Context(), userID, filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{Items: toUserWordResponses(words), Total: total})
}

// Get handles GET /v1/me/words/{id}.
func (h *MyWordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	uw, err := h.svc.GetWord(r.Context(), userID, wordID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserWordResponse(uw))
}

type customizeRequest struct {
	CustomDefinition *string `json:"customDefinition"`
	CustomDifficulty *string `json:"customDifficulty"`
}

// Customize handles PATCH /v1/me/words/{id}.
func (h *MyWordsHandler) Customize(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req customizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var difficulty *domain.DifficultyLevel
	if req.CustomDifficulty != nil {
		d := domain.DifficultyLevel(*req.CustomDifficulty)
		difficulty = &d
	}

	uw, err := h.svc.Customize(r.Context(), userID, wordID, req.CustomDefinition, difficulty)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserWordResponse(uw))
}

// Remove handles DELETE /v1/me/words/{id}. Soft delete.
func (h *MyWordsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.RemoveWord(r.Context(), userID, wordID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /v1/me/words/{id}/restore.
func (h *MyWordsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	uw, err := h.svc.RestoreWord(r.Context(), userID, wordID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserWordResponse(uw))
}
