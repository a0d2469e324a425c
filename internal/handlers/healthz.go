//go:generate mockgen -source=healthz.go -destination=healthz_mock.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/logger"
)

// Pinger checks a backing service.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthzHandler returns a liveness/readiness handler that pings the database.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthzHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.FromContext(r.Context()).Warnw("health check failed", "err", err)
				writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
