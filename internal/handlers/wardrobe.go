//go:generate mockgen -source=wardrobe.go -destination=wardrobe_mock.go -package=handlers

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

const wardrobeNotFound = "Wardrobe not found."

// WardrobeLister lists the caller's wardrobes.
type WardrobeLister interface {
	List(ctx context.Context, subject policy.Subject) ([]models.Wardrobe, error)
}

// WardrobeGetter returns one wardrobe.
type WardrobeGetter interface {
	Get(ctx context.Context, subject policy.Subject, id int64) (*models.Wardrobe, error)
}

// WardrobeCreator creates a wardrobe.
type WardrobeCreator interface {
	Create(ctx context.Context, subject policy.Subject, in *models.WardrobeInput) (*models.Wardrobe, error)
}

// WardrobeUpdater updates a wardrobe.
type WardrobeUpdater interface {
	Update(ctx context.Context, subject policy.Subject, id int64, in *models.WardrobeInput) (*models.Wardrobe, error)
}

// WardrobeDeleter deletes a wardrobe.
type WardrobeDeleter interface {
	Delete(ctx context.Context, subject policy.Subject, id int64) error
}

// WardrobeResponse wraps a single wardrobe
// swagger:model WardrobeResponse
type WardrobeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *models.Wardrobe `json:"data,omitempty"`
}

// WardrobeListResponse wraps a wardrobe list
// swagger:model WardrobeListResponse
type WardrobeListResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []models.Wardrobe `json:"data"`
}

// NewListWardrobesHandler returns an HTTP handler listing wardrobes.
// @Summary List wardrobes
// @Description Returns the user's wardrobes with referenced clothing items
// @Tags wardrobe
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.WardrobeListResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wardrobe [get]
func NewListWardrobesHandler(svc WardrobeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		list, err := svc.List(r.Context(), subject)
		if err != nil {
			writeServiceError(w, r, err, wardrobeNotFound)
			return
		}
		if list == nil {
			list = []models.Wardrobe{}
		}

		writeJSON(w, http.StatusOK, WardrobeListResponse{
			Success: true,
			Message: "Wardrobes retrieved successfully.",
			Data:    list,
		})
	}
}

// NewGetWardrobeHandler returns an HTTP handler for a single wardrobe.
// @Summary Get wardrobe
// @Tags wardrobe
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wardrobe id"
// @Success 200 {object} handlers.WardrobeResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wardrobe not found."
// @Router /wardrobe/{id} [get]
func NewGetWardrobeHandler(svc WardrobeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, wardrobeNotFound)
			return
		}

		wr, err := svc.Get(r.Context(), subject, id)
		if err != nil {
			writeServiceError(w, r, err, wardrobeNotFound)
			return
		}

		writeJSON(w, http.StatusOK, WardrobeResponse{
			Success: true,
			Message: "Wardrobe retrieved successfully.",
			Data:    wr,
		})
	}
}

// NewCreateWardrobeHandler returns an HTTP handler creating a wardrobe.
// @Summary Create wardrobe
// @Description At least one of top, bottom or full outfit must be set and every item must belong to the user
// @Tags wardrobe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param wardrobe body models.WardrobeInput true "Wardrobe"
// @Success 200 {object} handlers.WardrobeResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wardrobe [post]
func NewCreateWardrobeHandler(svc WardrobeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var in models.WardrobeInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wr, err := svc.Create(r.Context(), subject, &in)
		if err != nil {
			writeServiceError(w, r, err, wardrobeNotFound)
			return
		}

		writeJSON(w, http.StatusOK, WardrobeResponse{
			Success: true,
			Message: "Wardrobe created successfully.",
			Data:    wr,
		})
	}
}

// NewUpdateWardrobeHandler returns an HTTP handler updating a wardrobe.
// @Summary Update wardrobe
// @Tags wardrobe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wardrobe id"
// @Param wardrobe body models.WardrobeInput true "Wardrobe"
// @Success 200 {object} handlers.WardrobeResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wardrobe not found."
// @Router /wardrobe/{id} [put]
func NewUpdateWardrobeHandler(svc WardrobeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, wardrobeNotFound)
			return
		}

		var in models.WardrobeInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wr, err := svc.Update(r.Context(), subject, id, &in)
		if err != nil {
			writeServiceError(w, r, err, wardrobeNotFound)
			return
		}

		writeJSON(w, http.StatusOK, WardrobeResponse{
			Success: true,
			Message: "Wardrobe updated successfully.",
			Data:    wr,
		})
	}
}

// NewDeleteWardrobeHandler returns an HTTP handler deleting a wardrobe.
// @Summary Delete wardrobe
// @Tags wardrobe
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wardrobe id"
// @Success 200 {object} handlers.WardrobeResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wardrobe not found."
// @Router /wardrobe/{id} [delete]
func NewDeleteWardrobeHandler(svc WardrobeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, wardrobeNotFound)
			return
		}

		if err := svc.Delete(r.Context(), subject, id); err != nil {
			writeServiceError(w, r, err, wardrobeNotFound)
			return
		}

		writeJSON(w, http.StatusOK, WardrobeResponse{
			Success: true,
			Message: "Wardrobe deleted successfully.",
		})
	}
}
