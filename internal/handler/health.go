package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is satisfied by the store backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// Connector reports gateway connectivity. A nil Connector is treated as connected.
type Connector interface {
	Connected() bool
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once the store backend answers and the bot is connected
// @Summary Readiness check
// @Description Returns OK once the snapshot backend answers a ping and the Discord gateway is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(backend Pinger, bot Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := backend.Ping(ctx); err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: ErrMsgStorageUnavailable})
			return
		}
		if bot != nil && !bot.Connected() {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Message: ErrMsgDiscordNotReady})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}
