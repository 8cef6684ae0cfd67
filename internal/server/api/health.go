package api

import (
	"context"
	"net/http"
	"time"
)

// healthTimeout — сколько ждать ответа хранилища.
const healthTimeout = 2 * time.Second

// HealthResponse — ответ health-check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health проверяет, что хранилище отвечает.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.Svc.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.Svc.Health.Ping(ctx); err != nil {
			if h.Log != nil {
				h.Log.Logger.Sugar().Warnw("health check failed", "error", err)
			}
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
