package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/service/list"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
	"github.com/lexibase/lexibase-backend/pkg/ctxutil"
)

// listService defines the catalog and membership interface needed by
// ListHandler.
type listService interface {
	Browse(ctx context.Context, filter domain.ListFilter) ([]domain.List, int, error)
	GetList(ctx context.Context, actor list.Actor, id uuid.UUID) (*domain.List, error)
	CreateList(ctx context.Context, actor list.Actor, input list.CreateListInput) (*domain.List, error)
	UpdateList(ctx context.Context, actor list.Actor, id uuid.UUID, input list.UpdateListInput) (*domain.List, error)
	DeleteList(ctx context.Context, actor list.Actor, id uuid.UUID) error
	AddWordToList(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error
	RemoveWordFromList(ctx context.Context, actor list.Actor, listID, wordID uuid.UUID) error

	AddToUser(ctx context.Context, userID, listID uuid.UUID) (*domain.UserList, error)
	MyLists(ctx context.Context, userID uuid.UUID) ([]domain.UserList, error)
	RenameUserList(ctx context.Context, userID, listID uuid.UUID, name, description *string) (*domain.UserList, error)
	RemoveFromUser(ctx context.Context, userID, listID uuid.UUID) error
	RefreshProgress(ctx context.Context, userID, listID uuid.UUID) (int, error)
}

// ListHandler serves the word list endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "lists")}
}

// listActor builds the service actor from the request context. Anonymous
// callers get a zero actor; the service layer decides what they may see.
func listActor(ctx context.Context) list.Actor {
	actor := list.Actor{Role: domain.UserRoleUser}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		actor.ID = id
	}
	if role := ctxutil.UserRoleFromCtx(ctx); role != "" {
		actor.Role = domain.UserRole(role)
	}
	return actor
}

// Browse handles GET /v1/lists.
// Query: q, difficulty, official, limit, offset.
func (h *ListHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ListFilter{
		OfficialOnly: q.Get("official") == "true",
		Limit:        queryInt(r, "limit", 0),
		Offset:       queryInt(r, "offset", 0),
	}
	if v := q.Get("q"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("difficulty"); v != "" {
		d := domain.DifficultyLevel(v)
		filter.Difficulty = &d
	}

	lists, total, err := h.svc.Browse(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]listResponse, 0, len(lists))
	for i := range lists {
		items = append(items, toListResponse(&lists[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: items, Total: total})
}

// Get handles GET /v1/lists/{id}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	l, err := h.svc.GetList(r.Context(), listActor(r.Context()), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

type createListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Difficulty  string  `json:"difficulty"`
	IsPublic    bool    `json:"isPublic"`
	CoverURL    *string `json:"coverUrl"`
	Official    bool    `json:"official"`
}

// Create handles POST /v1/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	l, err := h.svc.CreateList(r.Context(), listActor(r.Context()), list.CreateListInput{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  domain.DifficultyLevel(req.Difficulty),
		IsPublic:    req.IsPublic,
		CoverURL:    req.CoverURL,
		Official:    req.Official,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(l))
}

type updateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	IsPublic    *bool   `json:"isPublic"`
	CoverURL    *string `json:"coverUrl"`
}

// Update handles PATCH /v1/lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	var req updateListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := list.UpdateListInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CoverURL:    req.CoverURL,
	}
	if req.Difficulty != nil {
		d := domain.DifficultyLevel(*req.Difficulty)
		input.Difficulty = &d
	}

	l, err := h.svc.UpdateList(r.Context(), listActor(r.Context()), id, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(l))
}

// Delete handles DELETE /v1/lists/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	if err := h.svc.DeleteList(r.Context(), listActor(r.Context()), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type listWordRequest struct {
	WordID string `json:"wordId"`
}

// AddWord handles POST /v1/lists/{id}/words.
func (h *ListHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	var req listWordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.AddWordToList(r.Context(), listActor(r.Context()), listID, wordID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveWord handles DELETE /v1/lists/{id}/words/{wordId}.
func (h *ListHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}
	wordID, err := pathUUID(r, "wordId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.RemoveWordFromList(r.Context(), listActor(r.Context()), listID, wordID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Save handles POST /v1/lists/{id}/save. Adds the list to the user's
// collection.
func (h *ListHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	ul, err := h.svc.AddToUser(r.Context(), userID, listID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserListResponse(ul))
}

// MyLists handles GET /v1/me/lists.
func (h *ListHandler) MyLists(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	lists, err := h.svc.MyLists(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]userListResponse, 0, len(lists))
	for i := range lists {
		items = append(items, toUserListResponse(&lists[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: items, Total: len(items)})
}

type renameListRequest struct {
	CustomName        *string `json:"customName"`
	CustomDescription *string `json:"customDescription"`
}

// Rename handles PATCH /v1/me/lists/{id}.
func (h *ListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	var req renameListRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ul, err := h.svc.RenameUserList(r.Context(), userID, listID, req.CustomName, req.CustomDescription)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserListResponse(ul))
}

// Unsave handles DELETE /v1/me/lists/{id}.
func (h *ListHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	if err := h.svc.RemoveFromUser(r.Context(), userID, listID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefreshProgress handles POST /v1/me/lists/{id}/refresh.
func (h *ListHandler) RefreshProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	listID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	progress, err := h.svc.RefreshProgress(r.Context(), userID, listID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"progress": progress})
}
