//go:generate mockgen -source=avatar.go -destination=avatar_mock.go -package=handlers

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

// AvatarGenerator generates avatar images.
type AvatarGenerator interface {
	Generate(ctx context.Context, subject policy.Subject, prompt string) (*facades.AvatarResult, error)
}

// AvatarRequest represents the JSON body for avatar generation
// swagger:model AvatarRequest
type AvatarRequest struct {
	// Text prompt
	// required: true
	// default: A smiling person in a navy suit
	Prompt string `json:"prompt"`
}

// AvatarResponse is the normalised generation result
// swagger:model AvatarResponse
type AvatarResponse struct {
	Success bool    `json:"success"`
	Image   *string `json:"image"`           // data URL when the vendor returned image bytes
	URL     *string `json:"url"`             // hosted image URL
	Raw     *string `json:"raw"`             // vendor body when no known shape matched
	Error   string  `json:"error,omitempty"` // set on failure
}

// NewAvatarHandler returns an HTTP handler for avatar generation.
// @Summary Generate avatar
// @Description Generates an image from a free-form prompt via the avatar image vendor
// @Tags avatar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param avatarRequest body handlers.AvatarRequest true "Prompt"
// @Success 200 {object} handlers.AvatarResponse
// @Failure 400 {object} handlers.ErrorResponse "Prompt cannot be empty."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 502 {object} handlers.AvatarResponse "Vendor failure"
// @Router /avatar/generate [post]
func NewAvatarHandler(svc AvatarGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AvatarRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Prompt cannot be empty.")
			return
		}

		res, err := svc.Generate(r.Context(), subject, req.Prompt)
		if err != nil {
			var verr *services.ValidationError
			var upErr *facades.UpstreamError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
			case errors.As(err, &upErr):
				writeJSON(w, http.StatusBadGateway, AvatarResponse{Success: false, Error: upErr.Message})
			default:
				logger.FromContext(r.Context()).Errorw("avatar generation failed", "err", err)
				writeJSON(w, http.StatusBadGateway, AvatarResponse{Success: false, Error: err.Error()})
			}
			return
		}

		resp := AvatarResponse{Success: true}
		if res.ImageBase64 != "" && res.ImageMime != "" {
			image := "data:" + res.ImageMime + ";base64," + res.ImageBase64
			resp.Image = &image
		}
		if res.URL != "" {
			resp.URL = &res.URL
		}
		if res.RawJSON != "" {
			resp.Raw = &res.RawJSON
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
