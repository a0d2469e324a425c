package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/models"
)

const measurementColumns = `id, user_id, height, weight, chest, waist, hips, shoulders,
	neck_circumference, sleeve_length, inseam, thigh, gender, skin_color, description,
	created_at, updated_at`

// MeasurementRepository stores the single measurement row of each user.
type MeasurementRepository struct {
	db *sqlx.DB
}

func NewMeasurementRepository(db *sqlx.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// GetByUserID returns the user's measurements, or nil when none were saved.
func (r *MeasurementRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MeasurementDB, error) {
	const query = `SELECT ` + measurementColumns + ` FROM measurements WHERE user_id = $1`
	args := []any{userID}

	var m models.MeasurementDB
	err := r.db.GetContext(ctx, &m, query, args...)
	logQuery(ctx, query, args, m.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts the user's measurements or replaces the existing row in place.
func (r *MeasurementRepository) Save(ctx context.Context, userID uuid.UUID, in *models.MeasurementInput) (*models.MeasurementDB, error) {
	const query = `
		INSERT INTO measurements (
			user_id, height, weight, chest, waist, hips, shoulders,
			neck_circumference, sleeve_length, inseam, thigh, gender, skin_color, description,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			chest = EXCLUDED.chest,
			waist = EXCLUDED.waist,
			hips = EXCLUDED.hips,
			shoulders = EXCLUDED.shoulders,
			neck_circumference = EXCLUDED.neck_circumference,
			sleeve_length = EXCLUDED.sleeve_length,
			inseam = EXCLUDED.inseam,
			thigh = EXCLUDED.thigh,
			gender = EXCLUDED.gender,
			skin_color = EXCLUDED.skin_color,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING ` + measurementColumns
	args := []any{
		userID, in.Height, in.Weight, in.Chest, in.Waist, in.Hips, in.Shoulders,
		in.NeckCircumference, in.SleeveLength, in.Inseam, in.Thigh, in.Gender, in.SkinColor, in.Description,
	}

	var m models.MeasurementDB
	err := r.db.GetContext(ctx, &m, query, args...)
	logQuery(ctx, query, args[:1], m.ID, err)

	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes the user's measurements and reports whether a row existed.
func (r *MeasurementRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM measurements WHERE user_id = $1`
	args := []any{userID}

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
