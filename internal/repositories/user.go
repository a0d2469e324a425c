package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/models"
)

const userColumns = "user_id, username, email, password_hash, is_admin, created_at, updated_at"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching any of the given non-nil fields, or nil.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`
	args := []any{username, email}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(ctx, query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	args := []any{userID}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(ctx, query, args, user.Username, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user with a flag telling whether measurements were recorded.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, u.is_admin, u.created_at,
		       EXISTS (SELECT 1 FROM measurements m WHERE m.user_id = u.user_id) AS has_measurements
		FROM users u
		ORDER BY u.created_at
	`

	users := []models.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(ctx, query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with an already hashed password.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) error {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	userID := uuid.New()

	res, err := r.db.ExecContext(ctx, query, userID, username, email, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{userID, username, email}, rowsAffected, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return models.ErrUserAlreadyExists
	}
	return err
}
