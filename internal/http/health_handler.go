package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/db"
)

const healthCheckTimeout = 2 * time.Second

type healthHandler struct {
	logger   *slog.Logger
	checkers []db.HealthChecker
}

func newHealthHandler(logger *slog.Logger, checkers []db.HealthChecker) *healthHandler {
	return &healthHandler{
		logger:   logger,
		checkers: checkers,
	}
}

func (h *healthHandler) Healthz(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	for _, checker := range h.checkers {
		if ok, err := checker.IsHealthy(ctx); !ok {
			h.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
			return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		}
	}

	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
