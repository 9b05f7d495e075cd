package playback

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the status of a run over HTTP.
type Handler struct {
	tracker *StatusTracker
	log     *slog.Logger
}

// NewHandler returns a Handler reading from tracker.
func NewHandler(tracker *StatusTracker, log *slog.Logger) *Handler {
	return &Handler{tracker: tracker, log: log}
}

// Routes mounts the status endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/status", h.GetStatus)
	r.Get("/healthz", h.Healthz)
}

// GetStatus handles GET /status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.tracker.Snapshot()); err != nil {
		h.log.Debug("write status failed", slog.String("error", err.Error()))
	}
}

// Healthz handles GET /healthz. It answers 200 while the player is up,
// including after the run has finished and before the process exits.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}
