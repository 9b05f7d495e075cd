package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"monoplay/internal/platform/logger"
	"monoplay/internal/platform/metrics"
	"monoplay/internal/playback"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

func newStatusRouter(log *slog.Logger, met *metrics.Metrics, tracker *playback.StatusTracker) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Method(http.MethodGet, "/metrics", met.Handler())
	playback.NewHandler(tracker, log).Routes(r)
	return r
}

// startStatusServer serves metrics and run status in the background.
// A failure to listen is logged; playback goes on without the server.
func startStatusServer(addr string, log *slog.Logger, met *metrics.Metrics, tracker *playback.StatusTracker) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newStatusRouter(log, met, tracker),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("status server error", slog.String("error", err.Error()))
		}
	}()

	log.Info("status server starting", slog.String("addr", addr))
	return srv
}

func stopStatusServer(srv *http.Server, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("status server shutdown error", slog.String("error", err.Error()))
		return
	}
	log.Debug("status server stopped")
}
