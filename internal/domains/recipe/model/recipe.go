package model

import (
	"time"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/tag"
	"foodgram-backend/internal/domains/user"
)

// Bounds enforced both here and by database CHECK constraints
const (
	MinCookingTime = 1
	MaxCookingTime = 200
	MinAmount      = 1
	MaxAmount      = 2000
)

// ============ ENTITIES ============

// Recipe - Domain Entity (from database)
type Recipe struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`
	Name        string    `json:"name" db:"name"`
	Image       string    `json:"image" db:"image"`
	Text        string    `json:"text" db:"text"`
	CookingTime int       `json:"cooking_time" db:"cooking_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Joined data (populated on reads)
	Author      user.User        `json:"-"`
	Tags        []tag.Tag        `json:"tags"`
	Ingredients []IngredientLine `json:"ingredients"`
}

// IngredientLine is one ingredient row of a recipe with its amount.
// Name and MeasurementUnit are joined from the ingredients table.
type IngredientLine struct {
	ID              uuid.UUID `json:"id" db:"ingredient_id"`
	Name            string    `json:"name" db:"name"`
	MeasurementUnit string    `json:"measurement_unit" db:"measurement_unit"`
	Amount          int       `json:"amount" db:"amount"`
}
