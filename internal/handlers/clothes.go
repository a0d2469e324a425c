//go:generate mockgen -source=clothes.go -destination=clothes_mock.go -package=handlers

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
)

const clothingNotFound = "Clothing item not found."

// ClothesLister lists the caller's clothing items.
type ClothesLister interface {
	List(ctx context.Context, subject policy.Subject, category string) ([]models.OutfitDB, error)
}

// ClothesGetter returns one clothing item.
type ClothesGetter interface {
	Get(ctx context.Context, subject policy.Subject, id int64) (*models.OutfitDB, error)
}

// ClothesCreator creates a clothing item.
type ClothesCreator interface {
	Create(ctx context.Context, subject policy.Subject, in *models.OutfitInput) (*models.OutfitDB, error)
}

// ClothesUpdater updates a clothing item.
type ClothesUpdater interface {
	Update(ctx context.Context, subject policy.Subject, id int64, in *models.OutfitInput) (*models.OutfitDB, error)
}

// ClothesDeleter deletes a clothing item.
type ClothesDeleter interface {
	Delete(ctx context.Context, subject policy.Subject, id int64) error
}

// SampleDataSeeder creates the starter clothing set.
type SampleDataSeeder interface {
	SeedSampleData(ctx context.Context, subject policy.Subject) (int, error)
}

// SeedResponse reports how many sample items were created
// swagger:model SeedResponse
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// NewListClothesHandler returns an HTTP handler listing clothing items.
// @Summary List clothing items
// @Description Returns the user's clothing items, optionally filtered by category
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param category query string false "top, bottom or full"
// @Success 200 {array} models.OutfitDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid category"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /clothes [get]
func NewListClothesHandler(svc ClothesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := svc.List(r.Context(), subject, r.URL.Query().Get("category"))
		if err != nil {
			writeServiceError(w, r, err, clothingNotFound)
			return
		}
		if items == nil {
			items = []models.OutfitDB{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewGetClothesHandler returns an HTTP handler for a single clothing item.
// @Summary Get clothing item
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothing item id"
// @Success 200 {object} models.OutfitDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Clothing item not found."
// @Router /clothes/{id} [get]
func NewGetClothesHandler(svc ClothesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, clothingNotFound)
			return
		}

		item, err := svc.Get(r.Context(), subject, id)
		if err != nil {
			writeServiceError(w, r, err, clothingNotFound)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewCreateClothesHandler returns an HTTP handler creating a clothing item.
// @Summary Create clothing item
// @Tags clothes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.OutfitInput true "Clothing item"
// @Success 200 {object} models.OutfitDB
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /clothes [post]
func NewCreateClothesHandler(svc ClothesCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var in models.OutfitInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Create(r.Context(), subject, &in)
		if err != nil {
			writeServiceError(w, r, err, clothingNotFound)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewUpdateClothesHandler returns an HTTP handler updating a clothing item.
// @Summary Update clothing item
// @Tags clothes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothing item id"
// @Param item body models.OutfitInput true "Clothing item"
// @Success 200 {object} models.OutfitDB
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Clothing item not found."
// @Router /clothes/{id} [put]
func NewUpdateClothesHandler(svc ClothesUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, clothingNotFound)
			return
		}

		var in models.OutfitInput
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(r.Context(), subject, id, &in)
		if err != nil {
			writeServiceError(w, r, err, clothingNotFound)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// NewDeleteClothesHandler returns an HTTP handler deleting a clothing item.
// @Summary Delete clothing item
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothing item id"
// @Success 200 {object} handlers.MessageResponse "Clothing item deleted successfully."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Clothing item not found."
// @Router /clothes/{id} [delete]
func NewDeleteClothesHandler(svc ClothesDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusNotFound, clothingNotFound)
			return
		}

		if err := svc.Delete(r.Context(), subject, id); err != nil {
			writeServiceError(w, r, err, clothingNotFound)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Clothing item deleted successfully."})
	}
}

// NewSeedSampleDataHandler returns an HTTP handler that seeds starter clothing items.
// @Summary Seed sample clothing
// @Description Creates a fixed set of sample items. Fails if the user already has items.
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.SeedResponse
// @Failure 400 {object} handlers.ErrorResponse "Sample data already exists for this user."
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /clothes/seed-sample-data [post]
func NewSeedSampleDataHandler(svc SampleDataSeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := subjectFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		n, err := svc.SeedSampleData(r.Context(), subject)
		if err != nil {
			if errors.Is(err, services.ErrAlreadySeeded) {
				writeError(w, http.StatusBadRequest, "Sample data already exists for this user.")
				return
			}
			writeServiceError(w, r, err, clothingNotFound)
			return
		}

		writeJSON(w, http.StatusOK, SeedResponse{Message: "Sample data created successfully.", Count: n})
	}
}
