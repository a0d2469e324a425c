package models

import (
	"time"

	"github.com/google/uuid"
)

// WardrobeDB is a composed look referencing up to three clothing items.
type WardrobeDB struct {
	ID                  int64     `json:"id" db:"id"`
	UserID              uuid.UUID `json:"userId" db:"user_id"`
	Name                *string   `json:"name" db:"name"`
	TopClothesID        *int64    `json:"topClothesId" db:"top_clothes_id"`
	BottomClothesID     *int64    `json:"bottomClothesId" db:"bottom_clothes_id"`
	FullOutfitClothesID *int64    `json:"fullOutfitClothesId" db:"full_outfit_clothes_id"`
	Accessories         *string   `json:"accessories" db:"accessories"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// WardrobeInput is the payload for creating or updating a wardrobe.
type WardrobeInput struct {
	Name                *string `json:"name" validate:"omitempty,max=100"`
	TopClothesID        *int64  `json:"topClothesId" validate:"omitempty,gt=0"`
	BottomClothesID     *int64  `json:"bottomClothesId" validate:"omitempty,gt=0"`
	FullOutfitClothesID *int64  `json:"fullOutfitClothesId" validate:"omitempty,gt=0"`
	Accessories         *string `json:"accessories" validate:"omitempty,max=500"`
}

// Wardrobe is a wardrobe with its referenced clothing items resolved.
type Wardrobe struct {
	WardrobeDB
	TopClothes        *OutfitDB `json:"topClothes"`
	BottomClothes     *OutfitDB `json:"bottomClothes"`
	FullOutfitClothes *OutfitDB `json:"fullOutfitClothes"`
}
