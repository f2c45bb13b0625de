package rest

import (
	"context"
	"net/http"
	"time"
)

// probePingTimeout bounds the database ping in readiness and health checks.
const probePingTimeout = 3 * time.Second

// dbPinger reports database connectivity for the probes.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type componentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentHealth `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// Live always answers 200; it only proves the process is serving requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready answers 200 when the database responds to a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probePingTimeout)
	defer cancel()

	status, body := http.StatusOK, healthResponse{Status: "ok", Timestamp: time.Now()}
	if err := h.db.Ping(ctx); err != nil {
		status, body.Status = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, body)
}

// Health reports the overall status with per-component detail: the build
// version and the database ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probePingTimeout)
	defer cancel()

	start := time.Now()
	pingErr := h.db.Ping(ctx)

	database := componentHealth{Status: "ok", Latency: time.Since(start).String()}
	overall, status := "ok", http.StatusOK
	if pingErr != nil {
		database = componentHealth{Status: "down"}
		overall, status = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]componentHealth{"database": database},
		Timestamp:  time.Now(),
	})
}
