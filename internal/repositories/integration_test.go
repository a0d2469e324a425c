package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/migrations"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	tc.SkipIfProviderIsNotHealthy(t)

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserReadRepository(db)
	userWriter := NewUserWriteRepository(db)
	measurements := NewMeasurementRepository(db)
	outfits := NewOutfitRepository(db, nil)
	wardrobes := NewWardrobeRepository(db)

	require.NoError(t, userWriter.Save(ctx, "alice", "hash", "alice@example.com"))
	assert.Error(t, userWriter.Save(ctx, "alice", "hash", "other@example.com"))

	alice, err := users.GetByUsernameOrEmail(ctx, nil, ptr("alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, alice)

	missing, err := users.GetByUsernameOrEmail(ctx, ptr("nobody"), ptr("nobody@example.com"))
	require.NoError(t, err)
	assert.Nil(t, missing)

	t.Run("Measurement save twice keeps one row", func(t *testing.T) {
		_, err := measurements.Save(ctx, alice.UserID, &models.MeasurementInput{Height: ptr(170.0)})
		require.NoError(t, err)
		second, err := measurements.Save(ctx, alice.UserID, &models.MeasurementInput{Height: ptr(175.0), Weight: ptr(70.0)})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM measurements WHERE user_id = $1", alice.UserID))
		assert.Equal(t, 1, count)
		assert.Equal(t, 175.0, *second.Height)

		list, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].HasMeasurements)
	})

	t.Run("Wardrobe references outfits", func(t *testing.T) {
		top, err := outfits.Create(ctx, alice.UserID, &models.OutfitInput{Name: "Shirt", Type: ptr("shirt")})
		require.NoError(t, err)
		bottom, err := outfits.Create(ctx, alice.UserID, &models.OutfitInput{Name: "Jeans", Type: ptr("jeans")})
		require.NoError(t, err)

		w, err := wardrobes.Create(ctx, alice.UserID, &models.WardrobeInput{TopClothesID: &top.ID, BottomClothesID: &bottom.ID})
		require.NoError(t, err)

		found, err := outfits.GetByIDs(ctx, []int64{top.ID, bottom.ID})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		deleted, err := outfits.Delete(ctx, top.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		w, err = wardrobes.GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.Nil(t, w.TopClothesID)
		assert.Equal(t, bottom.ID, *w.BottomClothesID)

		deleted, err = wardrobes.Delete(ctx, w.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = wardrobes.Delete(ctx, w.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Measurement delete", func(t *testing.T) {
		deleted, err := measurements.Delete(ctx, alice.UserID)
		require.NoError(t, err)
		assert.True(t, deleted)

		m, err := measurements.GetByUserID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	other, err := users.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)
}
