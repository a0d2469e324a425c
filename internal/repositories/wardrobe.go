package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/models"
)

const wardrobeColumns = "id, user_id, name, top_clothes_id, bottom_clothes_id, full_outfit_clothes_id, accessories, created_at, updated_at"

// WardrobeRepository stores composed looks.
type WardrobeRepository struct {
	db *sqlx.DB
}

func NewWardrobeRepository(db *sqlx.DB) *WardrobeRepository {
	return &WardrobeRepository{db: db}
}

func (r *WardrobeRepository) Create(ctx context.Context, userID uuid.UUID, in *models.WardrobeInput) (*models.WardrobeDB, error) {
	const query = `
		INSERT INTO wardrobes (user_id, name, top_clothes_id, bottom_clothes_id, full_outfit_clothes_id, accessories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + wardrobeColumns
	args := []any{userID, in.Name, in.TopClothesID, in.BottomClothesID, in.FullOutfitClothesID, in.Accessories}

	var w models.WardrobeDB
	err := r.db.GetContext(ctx, &w, query, args...)
	logQuery(ctx, query, args, w.ID, err)

	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByID returns the wardrobe regardless of owner, or nil.
func (r *WardrobeRepository) GetByID(ctx context.Context, id int64) (*models.WardrobeDB, error) {
	const query = `SELECT ` + wardrobeColumns + ` FROM wardrobes WHERE id = $1`
	args := []any{id}

	var w models.WardrobeDB
	err := r.db.GetContext(ctx, &w, query, args...)
	logQuery(ctx, query, args, w.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WardrobeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WardrobeDB, error) {
	const query = `SELECT ` + wardrobeColumns + ` FROM wardrobes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}

	wardrobes := []models.WardrobeDB{}
	err := r.db.SelectContext(ctx, &wardrobes, query, args...)
	logQuery(ctx, query, args, len(wardrobes), err)

	if err != nil {
		return nil, err
	}
	return wardrobes, nil
}

// Update replaces the wardrobe fields and returns the new row, or nil if it is gone.
func (r *WardrobeRepository) Update(ctx context.Context, id int64, in *models.WardrobeInput) (*models.WardrobeDB, error) {
	const query = `
		UPDATE wardrobes
		SET name = $2, top_clothes_id = $3, bottom_clothes_id = $4, full_outfit_clothes_id = $5,
		    accessories = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + wardrobeColumns
	args := []any{id, in.Name, in.TopClothesID, in.BottomClothesID, in.FullOutfitClothesID, in.Accessories}

	var w models.WardrobeDB
	err := r.db.GetContext(ctx, &w, query, args...)
	logQuery(ctx, query, args, w.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WardrobeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM wardrobes WHERE id = $1`
	args := []any{id}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
