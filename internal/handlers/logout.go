//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/logger"
)

// Logouter revokes the caller's token.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// @Summary Logout
// @Description Revokes the current JWT until it expires
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok || claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(r.Context(), claims); err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
