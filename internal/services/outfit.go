//go:generate mockgen -source=outfit.go -destination=outfit_mock.go -package=services

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

// OutfitRepository defines storage operations for clothing items.
type OutfitRepository interface {
	Create(ctx context.Context, userID uuid.UUID, in *models.OutfitInput) (*models.OutfitDB, error)
	CreateMany(ctx context.Context, userID uuid.UUID, items []models.OutfitInput) (int, error)
	GetByID(ctx context.Context, id int64) (*models.OutfitDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.OutfitDB, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, id int64, in *models.OutfitInput) (*models.OutfitDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var categoryTypes = map[string][]string{
	models.CategoryTop: {
		"shirt", "t-shirt", "tshirt", "blouse", "sweater", "hoodie", "jacket", "top",
		"tank top", "cardigan", "coat", "polo", "sweatshirt", "vest", "blazer",
	},
	models.CategoryBottom: {
		"pants", "jeans", "trousers", "shorts", "skirt", "leggings", "chinos", "joggers",
	},
	models.CategoryFull: {
		"dress", "gown", "jumpsuit", "suit", "romper", "overalls", "onesie",
	},
}

// Category classifies a clothing item as top, bottom or full by its type,
// falling back to the stored category. Unclassifiable items return "".
func Category(o *models.OutfitDB) string {
	if o == nil {
		return ""
	}

	if o.Type != nil {
		typ := strings.ToLower(strings.TrimSpace(*o.Type))
		for category, types := range categoryTypes {
			for _, t := range types {
				if typ == t {
					return category
				}
			}
		}
	}

	if o.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*o.Category))
		if _, ok := categoryTypes[category]; ok {
			return category
		}
	}

	return ""
}

// SampleOutfits is the fixed starter set created by SeedSampleData.
var SampleOutfits = []models.OutfitInput{
	sample("White Cotton T-Shirt", "Casual", "t-shirt", "White", "Uniqlo", "M"),
	sample("Navy Oxford Shirt", "Business", "shirt", "Navy", "Ralph Lauren", "M"),
	sample("Grey Wool Sweater", "Casual", "sweater", "Grey", "COS", "L"),
	sample("Slim Blue Jeans", "Casual", "jeans", "Blue", "Levi's", "32"),
	sample("Beige Chinos", "Smart Casual", "chinos", "Beige", "Dockers", "32"),
	sample("Black Pleated Skirt", "Formal", "skirt", "Black", "Zara", "S"),
	sample("Red Summer Dress", "Casual", "dress", "Red", "H&M", "S"),
	sample("Charcoal Two-Piece Suit", "Formal", "suit", "Charcoal", "Hugo Boss", "50"),
}

func sample(name, category, typ, color, brand, size string) models.OutfitInput {
	return models.OutfitInput{
		Name:     name,
		Category: &category,
		Type:     &typ,
		Color:    &color,
		Brand:    &brand,
		Size:     &size,
	}
}

// OutfitService manages the caller's clothing items.
type OutfitService struct {
	repo OutfitRepository
}

// NewOutfitService creates a new OutfitService instance.
func NewOutfitService(repo OutfitRepository) *OutfitService {
	return &OutfitService{repo: repo}
}

// List returns the caller's items, optionally filtered by category (top, bottom, full).
func (svc *OutfitService) List(ctx context.Context, subject policy.Subject, category string) ([]models.OutfitDB, error) {
	if !policy.Can(subject, policy.List, ownedBy(policy.KindOutfit, subject)) {
		return nil, ErrNotFound
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" {
		if _, ok := categoryTypes[category]; !ok {
			return nil, &ValidationError{Field: "category", Message: "Invalid category. Use top, bottom or full."}
		}
	}

	items, err := svc.repo.ListByUserID(ctx, subject.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list outfits", "err", err, "user_id", subject.UserID)
		return nil, err
	}

	if category == "" {
		return items, nil
	}

	filtered := make([]models.OutfitDB, 0, len(items))
	for i := range items {
		if Category(&items[i]) == category {
			filtered = append(filtered, items[i])
		}
	}
	return filtered, nil
}

// Get returns one of the caller's items. Items owned by others are reported as ErrNotFound.
func (svc *OutfitService) Get(ctx context.Context, subject policy.Subject, id int64) (*models.OutfitDB, error) {
	return svc.owned(ctx, subject, policy.Read, id)
}

// Create stores a new item for the caller.
func (svc *OutfitService) Create(ctx context.Context, subject policy.Subject, in *models.OutfitInput) (*models.OutfitDB, error) {
	if !policy.Can(subject, policy.Create, ownedBy(policy.KindOutfit, subject)) {
		return nil, ErrNotFound
	}
	if err := validateOutfit(in); err != nil {
		return nil, err
	}

	o, err := svc.repo.Create(ctx, subject.UserID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create outfit", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	return o, nil
}

// Update replaces the fields of one of the caller's items.
func (svc *OutfitService) Update(ctx context.Context, subject policy.Subject, id int64, in *models.OutfitInput) (*models.OutfitDB, error) {
	if _, err := svc.owned(ctx, subject, policy.Update, id); err != nil {
		return nil, err
	}
	if err := validateOutfit(in); err != nil {
		return nil, err
	}

	o, err := svc.repo.Update(ctx, id, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update outfit", "err", err, "id", id)
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// Delete removes one of the caller's items.
func (svc *OutfitService) Delete(ctx context.Context, subject policy.Subject, id int64) error {
	if _, err := svc.owned(ctx, subject, policy.Delete, id); err != nil {
		return err
	}

	deleted, err := svc.repo.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete outfit", "err", err, "id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// SeedSampleData creates SampleOutfits for a caller who has no items yet.
// It returns the number of created items or ErrAlreadySeeded.
func (svc *OutfitService) SeedSampleData(ctx context.Context, subject policy.Subject) (int, error) {
	log := logger.FromContext(ctx)

	if !policy.Can(subject, policy.Create, ownedBy(policy.KindOutfit, subject)) {
		return 0, ErrNotFound
	}

	count, err := svc.repo.CountByUserID(ctx, subject.UserID)
	if err != nil {
		log.Errorw("failed to count outfits", "err", err, "user_id", subject.UserID)
		return 0, err
	}
	if count > 0 {
		return 0, ErrAlreadySeeded
	}

	created, err := svc.repo.CreateMany(ctx, subject.UserID, SampleOutfits)
	if err != nil {
		log.Errorw("failed to seed outfits", "err", err, "user_id", subject.UserID)
		return 0, err
	}

	log.Infow("sample outfits created", "user_id", subject.UserID, "count", created)
	return created, nil
}

func (svc *OutfitService) owned(ctx context.Context, subject policy.Subject, action policy.Action, id int64) (*models.OutfitDB, error) {
	o, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get outfit", "err", err, "id", id)
		return nil, err
	}
	if o == nil || !policy.Can(subject, action, policy.Resource{Kind: policy.KindOutfit, OwnerID: o.UserID}) {
		return nil, ErrNotFound
	}
	return o, nil
}

func validateOutfit(in *models.OutfitInput) error {
	if in == nil {
		return &ValidationError{Field: "body", Message: "Clothing data is required."}
	}
	in.Name = strings.TrimSpace(in.Name)
	return validateStruct(in)
}
