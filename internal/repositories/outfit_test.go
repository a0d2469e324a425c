package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outfitRowColumns = []string{"id", "user_id", "name", "category", "type", "color", "brand", "size", "accessories", "created_at", "updated_at"}

func outfitRow(rows *sqlmock.Rows, id int64, userID uuid.UUID, name, typ, color string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, userID.String(), name, nil, typ, color, nil, nil, nil, now, now)
}

func TestOutfitRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)
	userID := uuid.New()

	in := &models.OutfitInput{Name: "Dress", Type: ptr("dress"), Color: ptr("Red")}

	mock.ExpectQuery("INSERT INTO outfits").
		WithArgs(userID, "Dress", nil, "dress", "Red", nil, nil, nil).
		WillReturnRows(outfitRow(sqlmock.NewRows(outfitRowColumns), 3, userID, "Dress", "dress", "Red"))

	o, err := repo.Create(context.Background(), userID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.ID)
	assert.Equal(t, "Red", *o.Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_CreateManyUsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewOutfitRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	items := []models.OutfitInput{{Name: "Shirt"}, {Name: "Jeans"}}
	mock.ExpectExec("INSERT INTO outfits").WithArgs(userID, "Shirt", nil, nil, nil, nil, nil, nil).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO outfits").WithArgs(userID, "Jeans", nil, nil, nil, nil, nil, nil).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	n, err := repo.CreateMany(context.Background(), userID, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_CreateManyStopsOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)

	mock.ExpectExec("INSERT INTO outfits").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO outfits").WillReturnError(errors.New("boom"))

	n, err := repo.CreateMany(context.Background(), uuid.New(), []models.OutfitInput{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM outfits WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(outfitRow(sqlmock.NewRows(outfitRowColumns), 5, userID, "Jeans", "jeans", "Blue"))

	o, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, userID, o.UserID)

	mock.ExpectQuery("SELECT (.+) FROM outfits WHERE id = \\$1").
		WithArgs(int64(6)).
		WillReturnError(sql.ErrNoRows)

	o, err = repo.GetByID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, o)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_GetByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)
	userID := uuid.New()

	rows := sqlmock.NewRows(outfitRowColumns)
	outfitRow(rows, 1, userID, "Shirt", "shirt", "White")
	outfitRow(rows, 2, userID, "Jeans", "jeans", "Blue")

	mock.ExpectQuery("SELECT (.+) FROM outfits WHERE id IN \\(\\?, \\?\\)").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	outfits, err := repo.GetByIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, outfits, 2)

	empty, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_ListAndCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM outfits WHERE user_id = \\$1 ORDER BY").
		WithArgs(userID).
		WillReturnRows(outfitRow(sqlmock.NewRows(outfitRowColumns), 1, userID, "Shirt", "shirt", "White"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM outfits").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, err := repo.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := repo.CountByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutfitRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutfitRepository(db, nil)
	userID := uuid.New()

	in := &models.OutfitInput{Name: "Jacket", Color: ptr("Black")}

	mock.ExpectQuery("UPDATE outfits").
		WithArgs(int64(4), "Jacket", nil, nil, "Black", nil, nil, nil).
		WillReturnRows(outfitRow(sqlmock.NewRows(outfitRowColumns), 4, userID, "Jacket", "jacket", "Black"))
	mock.ExpectQuery("UPDATE outfits").
		WithArgs(int64(9), "Jacket", nil, nil, "Black", nil, nil, nil).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("DELETE FROM outfits").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM outfits").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))

	o, err := repo.Update(context.Background(), 4, in)
	require.NoError(t, err)
	assert.Equal(t, "Jacket", o.Name)

	o, err = repo.Update(context.Background(), 9, in)
	require.NoError(t, err)
	assert.Nil(t, o)

	deleted, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
