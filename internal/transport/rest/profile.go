package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/domain"
	"github.com/lexibase/lexibase-backend/internal/service/user"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
)

// profileService defines the profile interface needed by ProfileHandler.
type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in user.UpdateProfileInput) (*domain.User, error)
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, in user.UpdateSettingsInput) (*domain.UserSettings, error)
}

// ProfileHandler serves the authenticated user's profile and settings.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Me handles GET /v1/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	AvatarURL    *string `json:"avatarUrl"`
	BaseLanguage *string `json:"baseLanguage"`
	TargetLang   *string `json:"targetLanguage"`
}

// UpdateMe handles PATCH /v1/me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), userID, user.UpdateProfileInput{
		Name:         req.Name,
		AvatarURL:    req.AvatarURL,
		BaseLanguage: req.BaseLanguage,
		TargetLang:   req.TargetLang,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Settings handles GET /v1/me/settings.
func (h *ProfileHandler) Settings(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	s, err := h.svc.GetSettings(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

type updateSettingsRequest struct {
	DailyGoal       *int    `json:"dailyGoal"`
	WordsPerSession *int    `json:"wordsPerSession"`
	NewWordsPerDay  *int    `json:"newWordsPerDay"`
	Timezone        *string `json:"timezone"`
}

// UpdateSettings handles PATCH /v1/me/settings.
func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), userID, user.UpdateSettingsInput{
		DailyGoal:       req.DailyGoal,
		WordsPerSession: req.WordsPerSession,
		NewWordsPerDay:  req.NewWordsPerDay,
		Timezone:        req.Timezone,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}
