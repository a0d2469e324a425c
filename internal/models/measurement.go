package models

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementDB is the single measurement row owned by a user.
type MeasurementDB struct {
	ID                int64     `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	Height            *float64  `json:"height" db:"height"` // cm
	Weight            *float64  `json:"weight" db:"weight"` // kg
	Chest             *float64  `json:"chest" db:"chest"`
	Waist             *float64  `json:"waist" db:"waist"`
	Hips              *float64  `json:"hips" db:"hips"`
	Shoulders         *float64  `json:"shoulders" db:"shoulders"`
	NeckCircumference *float64  `json:"neckCircumference" db:"neck_circumference"`
	SleeveLength      *float64  `json:"sleeveLength" db:"sleeve_length"`
	Inseam            *float64  `json:"inseam" db:"inseam"`
	Thigh             *float64  `json:"thigh" db:"thigh"`
	Gender            *string   `json:"gender" db:"gender"`
	SkinColor         *string   `json:"skinColor" db:"skin_color"`
	Description       *string   `json:"description" db:"description"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// MeasurementInput is the one accepted measurement schema.
// All fields are optional; set values must fall inside the given ranges.
type MeasurementInput struct {
	Height            *float64 `json:"height" validate:"omitempty,gte=0,lte=300"`
	Weight            *float64 `json:"weight" validate:"omitempty,gte=0,lte=500"`
	Chest             *float64 `json:"chest" validate:"omitempty,gte=0,lte=300"`
	Waist             *float64 `json:"waist" validate:"omitempty,gte=0,lte=300"`
	Hips              *float64 `json:"hips" validate:"omitempty,gte=0,lte=300"`
	Shoulders         *float64 `json:"shoulders" validate:"omitempty,gte=0,lte=300"`
	NeckCircumference *float64 `json:"neckCircumference" validate:"omitempty,gte=0,lte=300"`
	SleeveLength      *float64 `json:"sleeveLength" validate:"omitempty,gte=0,lte=300"`
	Inseam            *float64 `json:"inseam" validate:"omitempty,gte=0,lte=300"`
	Thigh             *float64 `json:"thigh" validate:"omitempty,gte=0,lte=300"`
	Gender            *string  `json:"gender" validate:"omitempty,oneof=male female other Male Female Other"`
	SkinColor         *string  `json:"skinColor" validate:"omitempty,max=50"`
	Description       *string  `json:"description" validate:"omitempty,max=1000"`
}
