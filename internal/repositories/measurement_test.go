package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var measurementRowColumns = []string{
	"id", "user_id", "height", "weight", "chest", "waist", "hips", "shoulders",
	"neck_circumference", "sleeve_length", "inseam", "thigh", "gender", "skin_color", "description",
	"created_at", "updated_at",
}

func TestMeasurementRepository_GetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMeasurementRepository(db)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM measurements WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(measurementRowColumns).
			AddRow(1, userID.String(), 180.0, 75.0, nil, 80.0, 95.0, nil, nil, nil, nil, nil, "male", "olive", nil, now, now))

	m, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 180.0, *m.Height)
	assert.Nil(t, m.Chest)
	assert.Equal(t, "olive", *m.SkinColor)

	mock.ExpectQuery("SELECT (.+) FROM measurements").
		WillReturnError(sql.ErrNoRows)

	m, err = repo.GetByUserID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, m)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeasurementRepository_SaveUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMeasurementRepository(db)
	userID := uuid.New()
	now := time.Now()

	in := &models.MeasurementInput{Height: ptr(170.0), Weight: ptr(65.0)}

	mock.ExpectQuery("INSERT INTO measurements (.+) ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs(userID, in.Height, in.Weight, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(measurementRowColumns).
			AddRow(7, userID.String(), 170.0, 65.0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, now, now))

	m, err := repo.Save(context.Background(), userID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeasurementRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMeasurementRepository(db)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM measurements").WithArgs(userID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM measurements").WithArgs(userID).WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
