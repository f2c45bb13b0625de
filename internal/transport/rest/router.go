package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexibase/lexibase-backend/internal/config"
	"github.com/lexibase/lexibase-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Words    *WordHandler
	MyWords  *MyWordsHandler
	Lists    *ListHandler
	Practice *PracticeHandler
	Profile  *ProfileHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

// tokenValidator validates access tokens for the auth middleware.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// NewRouter assembles the HTTP routing table with the middleware chain.
// When the enrichment audio dir is configured it is mounted read-only
// under the audio base URL for serving generated pronunciation files.
func NewRouter(
	cfg *config.Config,
	h Handlers,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authLimit := limiter.Limit(cfg.Server.AuthRatePerMin)
	apiLimit := limiter.Limit(cfg.Server.APIRatePerMinute)

	// Auth endpoints get the stricter per-IP budget.
	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh)))
	mux.Handle("POST /auth/logout", authLimit(http.HandlerFunc(h.Auth.Logout)))
	mux.Handle("POST /auth/logout/all", authLimit(http.HandlerFunc(h.Auth.LogoutAll)))

	api := func(fn http.HandlerFunc) http.Handler { return apiLimit(fn) }

	// Shared dictionary.
	mux.Handle("GET /v1/words", api(h.Words.Search))
	mux.Handle("GET /v1/words/lookup", api(h.Words.Lookup))
	mux.Handle("GET /v1/words/{id}", api(h.Words.Get))

	// Personal collection.
	mux.Handle("POST /v1/me/words", api(h.MyWords.Add))
	mux.Handle("GET /v1/me/words", api(h.MyWords.List))
	mux.Handle("GET /v1/me/words/{id}", api(h.MyWords.Get))
	mux.Handle("PATCH /v1/me/words/{id}", api(h.MyWords.Customize))
	mux.Handle("DELETE /v1/me/words/{id}", api(h.MyWords.Remove))
	mux.Handle("POST /v1/me/words/{id}/restore", api(h.MyWords.Restore))

	// List catalog and membership.
	mux.Handle("GET /v1/lists", api(h.Lists.Browse))
	mux.Handle("POST /v1/lists", api(h.Lists.Create))
	mux.Handle("GET /v1/lists/{id}", api(h.Lists.Get))
	mux.Handle("PATCH /v1/lists/{id}", api(h.Lists.Update))
	mux.Handle("DELETE /v1/lists/{id}", api(h.Lists.Delete))
	mux.Handle("POST /v1/lists/{id}/words", api(h.Lists.AddWord))
	mux.Handle("DELETE /v1/lists/{id}/words/{wordId}", api(h.Lists.RemoveWord))
	mux.Handle("POST /v1/lists/{id}/save", api(h.Lists.Save))

	// Saved lists.
	mux.Handle("GET /v1/me/lists", api(h.Lists.MyLists))
	mux.Handle("PATCH /v1/me/lists/{id}", api(h.Lists.Rename))
	mux.Handle("DELETE /v1/me/lists/{id}", api(h.Lists.Unsave))
	mux.Handle("POST /v1/me/lists/{id}/refresh", api(h.Lists.RefreshProgress))

	// Practice.
	mux.Handle("POST /v1/practice/session", api(h.Practice.StartSession))
	mux.Handle("POST /v1/practice/answer", api(h.Practice.SubmitAnswer))
	mux.Handle("GET /v1/practice/dashboard", api(h.Practice.Dashboard))

	// Profile.
	mux.Handle("GET /v1/me", api(h.Profile.Me))
	mux.Handle("PATCH /v1/me", api(h.Profile.UpdateMe))
	mux.Handle("GET /v1/me/settings", api(h.Profile.Settings))
	mux.Handle("PATCH /v1/me/settings", api(h.Profile.UpdateSettings))

	// Admin.
	mux.Handle("GET /v1/admin/users", api(h.Admin.ListUsers))
	mux.Handle("PATCH /v1/admin/users/{id}/role", api(h.Admin.ChangeRole))
	mux.Handle("DELETE /v1/admin/users/{id}", api(h.Admin.DeactivateUser))
	mux.Handle("POST /v1/admin/words", api(h.Words.Create))
	mux.Handle("PATCH /v1/admin/words/{id}", api(h.Words.Update))
	mux.Handle("DELETE /v1/admin/words/{id}", api(h.Words.Delete))
	mux.Handle("POST /v1/admin/words/{id}/restore", api(h.Words.Restore))
	mux.Handle("POST /v1/admin/words/import", api(h.Admin.ImportWords))
	mux.Handle("POST /v1/admin/words/enrich", api(h.Admin.EnrichMissing))
	mux.Handle("POST /v1/admin/words/purge", api(h.Admin.PurgeDeleted))
	mux.Handle("POST /v1/admin/words/{id}/image", api(h.Admin.FindImage))
	mux.Handle("POST /v1/admin/words/{id}/audio", api(h.Admin.GenerateAudio))
	mux.Handle("POST /v1/admin/translate", api(h.Admin.Translate))

	// Probes bypass rate limiting.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	// Generated pronunciation audio.
	if dir := cfg.Enrich.AudioDir; dir != "" {
		prefix := cfg.Enrich.AudioBaseURL + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
	)

	return chain(mux)
}
