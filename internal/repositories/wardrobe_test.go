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

var wardrobeRowColumns = []string{"id", "user_id", "name", "top_clothes_id", "bottom_clothes_id", "full_outfit_clothes_id", "accessories", "created_at", "updated_at"}

func TestWardrobeRepository_CRUD(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWardrobeRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	in := &models.WardrobeInput{Name: ptr("Office"), TopClothesID: ptr(int64(1)), BottomClothesID: ptr(int64(2))}

	mock.ExpectQuery("INSERT INTO wardrobes").
		WithArgs(userID, "Office", int64(1), int64(2), nil, nil).
		WillReturnRows(sqlmock.NewRows(wardrobeRowColumns).
			AddRow(10, userID.String(), "Office", 1, 2, nil, nil, now, now))

	w, err := repo.Create(ctx, userID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), w.ID)
	assert.Equal(t, int64(1), *w.TopClothesID)
	assert.Nil(t, w.FullOutfitClothesID)

	mock.ExpectQuery("SELECT (.+) FROM wardrobes WHERE id = \\$1").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(wardrobeRowColumns).
			AddRow(10, userID.String(), "Office", 1, 2, nil, nil, now, now))

	w, err = repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, userID, w.UserID)

	mock.ExpectQuery("SELECT (.+) FROM wardrobes WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(wardrobeRowColumns).
			AddRow(10, userID.String(), "Office", 1, 2, nil, nil, now, now))

	list, err := repo.ListByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	update := &models.WardrobeInput{FullOutfitClothesID: ptr(int64(3)), Accessories: ptr("Necklace")}
	mock.ExpectQuery("UPDATE wardrobes").
		WithArgs(int64(10), nil, nil, nil, int64(3), "Necklace").
		WillReturnRows(sqlmock.NewRows(wardrobeRowColumns).
			AddRow(10, userID.String(), nil, nil, nil, 3, "Necklace", now, now))

	w, err = repo.Update(ctx, 10, update)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *w.FullOutfitClothesID)
	assert.Equal(t, "Necklace", *w.Accessories)

	mock.ExpectExec("DELETE FROM wardrobes").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM wardrobes").WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(ctx, 10)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 10)
	require.NoError(t, err)
	assert.False(t, deleted)

	mock.ExpectQuery("SELECT (.+) FROM wardrobes WHERE id = \\$1").
		WithArgs(int64(10)).
		WillReturnError(sql.ErrNoRows)

	w, err = repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, w)

	assert.NoError(t, mock.ExpectationsWereMet())
}
