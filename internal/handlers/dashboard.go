//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
)

// ProfileReader returns the caller's profile.
type ProfileReader interface {
	Profile(ctx context.Context, subject policy.Subject) (*services.Profile, error)
}

// StatsReader returns the caller's profile stats.
type StatsReader interface {
	Stats(ctx context.Context, subject policy.Subject) (*services.Stats, error)
}

// UserLister lists every user for admins.
type UserLister interface {
	ListUsers(ctx context.Context, subject policy.Subject) ([]models.UserSummary, error)
}

// ProfileResponse is the dashboard user profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	ID           uuid.UUID             `json:"id"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	IsAdmin      bool                  `json:"isAdmin"`
	Measurements *models.MeasurementDB `json:"measurements"`
}

// StatsResponse summarises profile completeness
// swagger:model StatsResponse
type StatsResponse struct {
	HasMeasurements bool `json:"hasMeasurements"`
	IsAdmin         bool `json:"isAdmin"`
	ProfileComplete bool `json:"profileComplete"`
}

// NewUserProfileHandler returns an HTTP handler for the dashboard profile.
// @Summary User profile
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found."
// @Router /dashboard/user-profile [get]
func NewUserProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		p, err := svc.Profile(r.Context(), subject)
		if err != nil {
			writeServiceError(w, r, err, "User not found.")
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			ID:           p.User.UserID,
			Username:     p.User.Username,
			Email:        p.User.Email,
			IsAdmin:      p.User.IsAdmin,
			Measurements: p.Measurements,
		})
	}
}

// NewStatsHandler returns an HTTP handler for dashboard stats.
// @Summary Profile stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.StatsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found."
// @Router /dashboard/stats [get]
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		s, err := svc.Stats(r.Context(), subject)
		if err != nil {
			writeServiceError(w, r, err, "User not found.")
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			HasMeasurements: s.HasMeasurements,
			IsAdmin:         s.IsAdmin,
			ProfileComplete: s.ProfileComplete,
		})
	}
}

// NewAdminUsersHandler returns an HTTP handler listing all users for admins.
// @Summary List users (admin)
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserSummary
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required."
// @Router /dashboard/admin/users [get]
func NewAdminUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		users, err := svc.ListUsers(r.Context(), subject)
		if err != nil {
			writeServiceError(w, r, err, "User not found.")
			return
		}

		if users == nil {
			users = []models.UserSummary{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}
