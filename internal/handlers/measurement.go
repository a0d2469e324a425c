//go:generate mockgen -source=measurement.go -destination=measurement_mock.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

// MeasurementGetter returns the caller's measurements.
type MeasurementGetter interface {
	Get(ctx context.Context, subject policy.Subject) (*models.MeasurementDB, error)
}

// MeasurementSaver creates or replaces the caller's measurements.
type MeasurementSaver interface {
	Save(ctx context.Context, subject policy.Subject, in *models.MeasurementInput) (*models.MeasurementDB, error)
}

// MeasurementDeleter removes the caller's measurements.
type MeasurementDeleter interface {
	Delete(ctx context.Context, subject policy.Subject) error
}

// NewGetMeasurementsHandler returns an HTTP handler for reading measurements.
// @Summary Get measurements
// @Description Returns the authenticated user's body measurements
// @Tags measurements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MeasurementDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No measurements found for this user."
// @Router /avatar/measurements/retrieve [get]
func NewGetMeasurementsHandler(svc MeasurementGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		m, err := svc.Get(r.Context(), subject)
		if err != nil {
			writeServiceError(w, r, err, "No measurements found for this user.")
			return
		}

		writeJSON(w, http.StatusOK, m)
	}
}

// NewSaveMeasurementsHandler returns an HTTP handler that upserts measurements.
// @Summary Save measurements
// @Description Creates the user's measurements or updates the existing record in place
// @Tags measurements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param measurements body models.MeasurementInput true "Measurements"
// @Success 200 {object} models.MeasurementDB
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /avatar/measurements/save [post]
func NewSaveMeasurementsHandler(svc MeasurementSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var in models.MeasurementInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		m, err := svc.Save(r.Context(), subject, &in)
		if err != nil {
			writeServiceError(w, r, err, "User not found.")
			return
		}

		writeJSON(w, http.StatusOK, m)
	}
}

// NewDeleteMeasurementsHandler returns an HTTP handler that removes measurements.
// @Summary Delete measurements
// @Tags measurements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Measurements deleted successfully."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No measurements to delete."
// @Router /avatar/measurements/remove [delete]
func NewDeleteMeasurementsHandler(svc MeasurementDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), subject); err != nil {
			writeServiceError(w, r, err, "No measurements to delete.")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Measurements deleted successfully."})
	}
}
