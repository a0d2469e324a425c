//go:generate mockgen -source=wardrobe.go -destination=wardrobe_mock.go -package=services

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

// WardrobeRepository defines storage operations for wardrobes.
type WardrobeRepository interface {
	Create(ctx context.Context, userID uuid.UUID, in *models.WardrobeInput) (*models.WardrobeDB, error)
	GetByID(ctx context.Context, id int64) (*models.WardrobeDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WardrobeDB, error)
	Update(ctx context.Context, id int64, in *models.WardrobeInput) (*models.WardrobeDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// OutfitLookup resolves clothing items by id.
type OutfitLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]models.OutfitDB, error)
}

// WardrobeService manages the caller's wardrobes and resolves their clothing items.
type WardrobeService struct {
	repo    WardrobeRepository
	outfits OutfitLookup
}

// NewWardrobeService creates a new WardrobeService instance.
func NewWardrobeService(repo WardrobeRepository, outfits OutfitLookup) *WardrobeService {
	return &WardrobeService{repo: repo, outfits: outfits}
}

// List returns the caller's wardrobes with clothing items resolved.
func (svc *WardrobeService) List(ctx context.Context, subject policy.Subject) ([]models.Wardrobe, error) {
	if !policy.Can(subject, policy.List, ownedBy(policy.KindWardrobe, subject)) {
		return nil, ErrNotFound
	}

	rows, err := svc.repo.ListByUserID(ctx, subject.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list wardrobes", "err", err, "user_id", subject.UserID)
		return nil, err
	}

	return svc.resolve(ctx, rows)
}

// Get returns one of the caller's wardrobes. Wardrobes owned by others are reported as ErrNotFound.
func (svc *WardrobeService) Get(ctx context.Context, subject policy.Subject, id int64) (*models.Wardrobe, error) {
	w, err := svc.owned(ctx, subject, policy.Read, id)
	if err != nil {
		return nil, err
	}
	return svc.resolveOne(ctx, w)
}

// Create stores a new wardrobe. At least one clothing slot must be set and
// every referenced item must belong to the caller.
func (svc *WardrobeService) Create(ctx context.Context, subject policy.Subject, in *models.WardrobeInput) (*models.Wardrobe, error) {
	if !policy.Can(subject, policy.Create, ownedBy(policy.KindWardrobe, subject)) {
		return nil, ErrNotFound
	}
	if err := svc.validate(ctx, subject, in); err != nil {
		return nil, err
	}

	w, err := svc.repo.Create(ctx, subject.UserID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create wardrobe", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	return svc.resolveOne(ctx, w)
}

// Update replaces the fields of one of the caller's wardrobes.
func (svc *WardrobeService) Update(ctx context.Context, subject policy.Subject, id int64, in *models.WardrobeInput) (*models.Wardrobe, error) {
	if _, err := svc.owned(ctx, subject, policy.Update, id); err != nil {
		return nil, err
	}
	if err := svc.validate(ctx, subject, in); err != nil {
		return nil, err
	}

	w, err := svc.repo.Update(ctx, id, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update wardrobe", "err", err, "id", id)
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	return svc.resolveOne(ctx, w)
}

// Delete removes one of the caller's wardrobes.
func (svc *WardrobeService) Delete(ctx context.Context, subject policy.Subject, id int64) error {
	if _, err := svc.owned(ctx, subject, policy.Delete, id); err != nil {
		return err
	}

	deleted, err := svc.repo.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete wardrobe", "err", err, "id", id)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (svc *WardrobeService) owned(ctx context.Context, subject policy.Subject, action policy.Action, id int64) (*models.WardrobeDB, error) {
	w, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get wardrobe", "err", err, "id", id)
		return nil, err
	}
	if w == nil || !policy.Can(subject, action, policy.Resource{Kind: policy.KindWardrobe, OwnerID: w.UserID}) {
		return nil, ErrNotFound
	}
	return w, nil
}

type slot struct {
	field string
	label string
	id    *int64
}

func slots(in *models.WardrobeInput) []slot {
	return []slot{
		{field: "topClothesId", label: "top", id: in.TopClothesID},
		{field: "bottomClothesId", label: "bottom", id: in.BottomClothesID},
		{field: "fullOutfitClothesId", label: "full outfit", id: in.FullOutfitClothesID},
	}
}

func (svc *WardrobeService) validate(ctx context.Context, subject policy.Subject, in *models.WardrobeInput) error {
	if in == nil {
		return &ValidationError{Field: "body", Message: "Wardrobe data is required."}
	}
	if err := validateStruct(in); err != nil {
		return err
	}

	var ids []int64
	for _, s := range slots(in) {
		if s.id != nil {
			ids = append(ids, *s.id)
		}
	}
	if len(ids) == 0 {
		return &ValidationError{
			Field:   "clothes",
			Message: "At least one clothing item (top, bottom, or full outfit) must be selected.",
		}
	}

	items, err := svc.outfits.GetByIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get outfits", "err", err, "ids", ids)
		return err
	}
	found := make(map[int64]*models.OutfitDB, len(items))
	for i := range items {
		found[items[i].ID] = &items[i]
	}

	for _, s := range slots(in) {
		if s.id == nil {
			continue
		}
		o, ok := found[*s.id]
		if !ok || !policy.Can(subject, policy.Read, policy.Resource{Kind: policy.KindOutfit, OwnerID: o.UserID}) {
			return &ValidationError{
				Field:   s.field,
				Message: "Selected " + s.label + " clothing item not found or does not belong to you.",
			}
		}
	}

	return nil
}

func (svc *WardrobeService) resolveOne(ctx context.Context, w *models.WardrobeDB) (*models.Wardrobe, error) {
	resolved, err := svc.resolve(ctx, []models.WardrobeDB{*w})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// resolve loads every referenced item in one query. Items owned by someone
// other than the wardrobe owner are left unresolved.
func (svc *WardrobeService) resolve(ctx context.Context, rows []models.WardrobeDB) ([]models.Wardrobe, error) {
	result := make([]models.Wardrobe, len(rows))

	seen := make(map[int64]struct{})
	var ids []int64
	for _, w := range rows {
		for _, id := range []*int64{w.TopClothesID, w.BottomClothesID, w.FullOutfitClothesID} {
			if id == nil {
				continue
			}
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				ids = append(ids, *id)
			}
		}
	}

	found := make(map[int64]*models.OutfitDB)
	if len(ids) > 0 {
		items, err := svc.outfits.GetByIDs(ctx, ids)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to resolve wardrobe outfits", "err", err)
			return nil, err
		}
		for i := range items {
			found[items[i].ID] = &items[i]
		}
	}

	lookup := func(owner uuid.UUID, id *int64) *models.OutfitDB {
		if id == nil {
			return nil
		}
		o, ok := found[*id]
		if !ok || o.UserID != owner {
			return nil
		}
		return o
	}

	for i, w := range rows {
		result[i] = models.Wardrobe{
			WardrobeDB:        w,
			TopClothes:        lookup(w.UserID, w.TopClothesID),
			BottomClothes:     lookup(w.UserID, w.BottomClothesID),
			FullOutfitClothes: lookup(w.UserID, w.FullOutfitClothesID),
		}
	}

	return result, nil
}
