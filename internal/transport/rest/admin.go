package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/provider"
	"github.com/lexibase/lexibase-backend/internal/service/ingest"
	"github.com/lexibase/lexibase-backend/internal/service/media"
	"github.com/lexibase/lexibase-backend/internal/service/user"
	"github.com/lexibase/lexibase-backend/pkg/ctxutil"
)

// userAdminService defines the user administration interface needed by
// AdminHandler.
type userAdminService interface {
	ListUsers(ctx context.Context, actor user.Actor, limit, offset int) ([]domain.User, int, error)
	ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role domain.UserRole) (*domain.User, error)
	Deactivate(ctx context.Context, actor user.Actor, userID uuid.UUID) error
}

// ingestService imports words from external dictionary sources.
type ingestService interface {
	IngestWord(ctx context.Context, text, languageCode string) (*domain.Word, error)
	IngestBatch(ctx context.Context, texts []string, languageCode string) (*ingest.BatchReport, error)
}

// mediaService enriches words with images, audio and translations.
type mediaService interface {
	FindImage(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	GenerateAudio(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	Translate(ctx context.Context, text, from, to string) (*provider.TranslationResult, error)
	EnrichMissing(ctx context.Context, languageCode string) (*media.Report, error)
}

// purgeService permanently removes soft-deleted words past retention.
type purgeService interface {
	PurgeDeleted(ctx context.Context) (int64, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	users  userAdminService
	ingest ingestService
	media  mediaService
	purge  purgeService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, ingestSvc ingestService, mediaSvc mediaService, purge purgeService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:  users,
		ingest: ingestSvc,
		media:  mediaSvc,
		purge:  purge,
		log:    logger.With("handler", "admin"),
	}
}

// adminActor builds the service actor from the request context.
func adminActor(ctx context.Context) user.Actor {
	actor := user.Actor{Role: domain.UserRole(ctxutil.UserRoleFromCtx(ctx))}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		actor.ID = id
	}
	return actor
}

// ListUsers handles GET /v1/admin/users.
// Query: limit, offset.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), adminActor(r.Context()),
		queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: items, Total: total})
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole handles PATCH /v1/admin/users/{id}/role.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.users.ChangeRole(r.Context(), adminActor(r.Context()), userID, domain.UserRole(req.Role))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// DeactivateUser handles DELETE /v1/admin/users/{id}.
func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.users.Deactivate(r.Context(), adminActor(r.Context()), userID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type importRequest struct {
	Words        []string `json:"words"`
	LanguageCode string   `json:"languageCode"`
}

type importResponse struct {
	Ingested int      `json:"ingested"`
	Missing  []string `json:"missing"`
	Failed   []string `json:"failed"`
}

// ImportWords handles POST /v1/admin/words/import. Looks every word up in
// the external dictionary source for its language and upserts the results.
func (h *AdminHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Words) == 0 {
		writeError(w, http.StatusBadRequest, "words must not be empty")
		return
	}

	report, err := h.ingest.IngestBatch(r.Context(), req.Words, req.LanguageCode)
	if err != nil && report == nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Ingested: report.Ingested,
		Missing:  report.Missing,
		Failed:   report.Failed,
	})
}

// FindImage handles POST /v1/admin/words/{id}/image.
func (h *AdminHandler) FindImage(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.media.FindImage(r.Context(), wordID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// GenerateAudio handles POST /v1/admin/words/{id}/audio.
func (h *AdminHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	wordID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.media.GenerateAudio(r.Context(), wordID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

type translateRequest struct {
	Text string `json:"text"`
	From string `json:"from"`
	To   string `json:"to"`
}

type translateResponse struct {
	Text  string  `json:"text"`
	Match float64 `json:"match"`
}

// Translate handles POST /v1/admin/translate.
func (h *AdminHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.media.Translate(r.Context(), req.Text, req.From, req.To)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{Text: result.Text, Match: result.Match})
}

type enrichResponse struct {
	Processed   int `json:"processed"`
	ImagesAdded int `json:"imagesAdded"`
	AudioAdded  int `json:"audioAdded"`
	Failed      int `json:"failed"`
}

// EnrichMissing handles POST /v1/admin/words/enrich?language=da. Batch
// fills missing images and audio for catalog words.
func (h *AdminHandler) EnrichMissing(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	report, err := h.media.EnrichMissing(r.Context(), r.URL.Query().Get("language"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, enrichResponse{
		Processed:   report.Processed,
		ImagesAdded: report.ImagesAdded,
		AudioAdded:  report.AudioAdded,
		Failed:      report.Failed,
	})
}

// PurgeDeleted handles POST /v1/admin/words/purge. Permanently removes
// soft-deleted words past the retention window.
func (h *AdminHandler) PurgeDeleted(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	purged, err := h.purge.PurgeDeleted(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"purged": purged})
}
