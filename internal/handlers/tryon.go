//go:generate mockgen -source=tryon.go -destination=tryon_mock.go -package=handlers

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/facades"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
)

// TryOnGenerator renders the caller wearing a wardrobe.
type TryOnGenerator interface {
	Generate(ctx context.Context, subject policy.Subject, wardrobeID int64) (*services.TryOnResult, error)
}

// TryOnRequest represents the JSON body for try-on generation
// swagger:model TryOnRequest
type TryOnRequest struct {
	// Wardrobe id
	// required: true
	WardrobeID int64 `json:"wardrobeId"`
}

// TryOnResponse is a generated try-on image
// swagger:model TryOnResponse
type TryOnResponse struct {
	ImageURL  string `json:"imageUrl"`
	Prompt    string `json:"prompt"`
	StoredURL string `json:"storedUrl,omitempty"`
}

// NewTryOnHandler returns an HTTP handler for virtual try-on generation.
// @Summary Generate virtual try-on
// @Description Builds a prompt from the user's measurements and the selected wardrobe and renders it
// @Tags virtual-try-on
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tryOnRequest body handlers.TryOnRequest true "Wardrobe selection"
// @Success 200 {object} handlers.TryOnResponse
// @Failure 400 {object} handlers.ErrorResponse "Measurements missing or below minimum height"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Selected wardrobe outfit not found."
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Generation failed"
// @Router /virtual-try-on/generate [post]
func NewTryOnHandler(svc TryOnGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req TryOnRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Generate(r.Context(), subject, req.WardrobeID)
		if err != nil {
			var upErr *facades.UpstreamError
			switch {
			case errors.Is(err, services.ErrMeasurementsRequired),
				errors.Is(err, services.ErrHeightTooLow):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrNotFound):
				writeError(w, http.StatusNotFound, "Selected wardrobe outfit not found.")
			case errors.Is(err, facades.ErrVertexNotConfigured),
				errors.Is(err, facades.ErrNoPredictions):
				writeError(w, http.StatusInternalServerError, err.Error())
			case errors.As(err, &upErr):
				writeError(w, http.StatusInternalServerError, "Failed to generate image: "+upErr.Message)
			default:
				logger.FromContext(r.Context()).Errorw("try-on generation failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TryOnResponse{
			ImageURL:  res.ImageURL,
			Prompt:    res.Prompt,
			StoredURL: res.StoredURL,
		})
	}
}
