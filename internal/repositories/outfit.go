package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/models"
)

const outfitColumns = "id, user_id, name, category, type, color, brand, size, accessories, created_at, updated_at"

// OutfitRepository stores clothing items.
type OutfitRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewOutfitRepository(db *sqlx.DB, txGetter TxGetter) *OutfitRepository {
	return &OutfitRepository{db: db, txGetter: txGetter}
}

// Create inserts one item for the user.
func (r *OutfitRepository) Create(ctx context.Context, userID uuid.UUID, in *models.OutfitInput) (*models.OutfitDB, error) {
	const query = `
		INSERT INTO outfits (user_id, name, category, type, color, brand, size, accessories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + outfitColumns
	args := []any{userID, in.Name, in.Category, in.Type, in.Color, in.Brand, in.Size, in.Accessories}

	var o models.OutfitDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &o, query, args...)
	logQuery(ctx, query, args, o.ID, err)

	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateMany inserts several items for the user, inside the request transaction when one is open.
func (r *OutfitRepository) CreateMany(ctx context.Context, userID uuid.UUID, items []models.OutfitInput) (int, error) {
	const query = `
		INSERT INTO outfits (user_id, name, category, type, color, brand, size, accessories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	ex := executor(ctx, r.db, r.txGetter)

	for i, in := range items {
		args := []any{userID, in.Name, in.Category, in.Type, in.Color, in.Brand, in.Size, in.Accessories}
		_, err := ex.ExecContext(ctx, query, args...)
		logQuery(ctx, query, args, i, err)
		if err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// GetByID returns the item regardless of owner, or nil.
func (r *OutfitRepository) GetByID(ctx context.Context, id int64) (*models.OutfitDB, error) {
	const query = `SELECT ` + outfitColumns + ` FROM outfits WHERE id = $1`
	args := []any{id}

	var o models.OutfitDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &o, query, args...)
	logQuery(ctx, query, args, o.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByIDs returns the items with the given ids. Missing ids are skipped.
func (r *OutfitRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.OutfitDB, error) {
	outfits := []models.OutfitDB{}
	if len(ids) == 0 {
		return outfits, nil
	}

	query, args, err := sqlx.In(`SELECT `+outfitColumns+` FROM outfits WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	ex := executor(ctx, r.db, r.txGetter)
	query = ex.Rebind(query)

	err = sqlx.SelectContext(ctx, ex, &outfits, query, args...)
	logQuery(ctx, query, args, len(outfits), err)

	if err != nil {
		return nil, err
	}
	return outfits, nil
}

// ListByUserID returns the user's items, newest first.
func (r *OutfitRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.OutfitDB, error) {
	const query = `SELECT ` + outfitColumns + ` FROM outfits WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}

	outfits := []models.OutfitDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &outfits, query, args...)
	logQuery(ctx, query, args, len(outfits), err)

	if err != nil {
		return nil, err
	}
	return outfits, nil
}

// CountByUserID returns how many items the user owns.
func (r *OutfitRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM outfits WHERE user_id = $1`
	args := []any{userID}

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, args...)
	logQuery(ctx, query, args, count, err)

	return count, err
}

// Update replaces the editable fields of an item and returns the new row, or nil if it is gone.
func (r *OutfitRepository) Update(ctx context.Context, id int64, in *models.OutfitInput) (*models.OutfitDB, error) {
	const query = `
		UPDATE outfits
		SET name = $2, category = $3, type = $4, color = $5, brand = $6, size = $7, accessories = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + outfitColumns
	args := []any{id, in.Name, in.Category, in.Type, in.Color, in.Brand, in.Size, in.Accessories}

	var o models.OutfitDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &o, query, args...)
	logQuery(ctx, query, args, o.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete removes an item and reports whether it existed.
func (r *OutfitRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM outfits WHERE id = $1`
	args := []any{id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
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
