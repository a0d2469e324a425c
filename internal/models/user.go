package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUserAlreadyExists is returned when the username or email is already taken.
var ErrUserAlreadyExists = errors.New("username or email already exists")

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`    // Unique username
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`     // Admin flag
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// UserSummary is a user row joined with whether measurements exist, used by the admin listing.
type UserSummary struct {
	UserID          uuid.UUID `json:"id" db:"user_id"`
	Username        string    `json:"username" db:"username"`
	Email           string    `json:"email" db:"email"`
	IsAdmin         bool      `json:"isAdmin" db:"is_admin"`
	HasMeasurements bool      `json:"hasMeasurements" db:"has_measurements"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
