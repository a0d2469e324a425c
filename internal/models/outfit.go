package models

import (
	"time"

	"github.com/google/uuid"
)

// Outfit categories used for filtering and try-on composition.
const (
	CategoryTop    = "top"
	CategoryBottom = "bottom"
	CategoryFull   = "full"
)

// OutfitDB is a single clothing item.
type OutfitDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Category    *string   `json:"category" db:"category"`
	Type        *string   `json:"type" db:"type"`
	Color       *string   `json:"color" db:"color"`
	Brand       *string   `json:"brand" db:"brand"`
	Size        *string   `json:"size" db:"size"`
	Accessories *string   `json:"accessories" db:"accessories"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// OutfitInput is the payload for creating or updating a clothing item.
type OutfitInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Type        *string `json:"type" validate:"omitempty,max=50"`
	Color       *string `json:"color" validate:"omitempty,max=50"`
	Brand       *string `json:"brand" validate:"omitempty,max=50"`
	Size        *string `json:"size" validate:"omitempty,max=20"`
	Accessories *string `json:"accessories" validate:"omitempty,max=500"`
}
