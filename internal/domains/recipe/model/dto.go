package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/tag"
	"foodgram-backend/internal/domains/user"
)

// ============ REQUEST DTOs ============

// IngredientLineRequest references an ingredient by id with an amount
type IngredientLineRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Amount int       `json:"amount" binding:"required"`
}

// CreateRecipeRequest - Image is a base64 data URI, uploaded to object
// storage before the database write
type CreateRecipeRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Text        string                  `json:"text" binding:"required"`
	Image       string                  `json:"image" binding:"required"`
	CookingTime int                     `json:"cooking_time" binding:"required"`
	Tags        []uuid.UUID             `json:"tags" binding:"required"`
	Ingredients []IngredientLineRequest `json:"ingredients" binding:"required"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Text, validation.Required.Error("text is required")),
		validation.Field(&r.Image, validation.Required.Error("image is required")),
		validation.Field(&r.CookingTime, validation.Required),
	)
}

// UpdateRecipeRequest - All fields optional (pointer to detect omitted).
// A provided Tags or Ingredients slice fully replaces the stored set.
type UpdateRecipeRequest struct {
	Name        *string                  `json:"name"`
	Text        *string                  `json:"text"`
	Image       *string                  `json:"image"`
	CookingTime *int                     `json:"cooking_time"`
	Tags        *[]uuid.UUID             `json:"tags"`
	Ingredients *[]IngredientLineRequest `json:"ingredients"`
}

func (r UpdateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Text, validation.NilOrNotEmpty),
		validation.Field(&r.Image, validation.NilOrNotEmpty),
	)
}

// ListRecipesRequest - Query parameters. Tag slugs are OR-combined,
// is_favorited / is_in_shopping_cart are relative to the requesting user.
type ListRecipesRequest struct {
	Author           string   `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
	Page             int      `form:"page"`
	Limit            int      `form:"limit"`
}

// Normalize clamps pagination to sane defaults
func (r *ListRecipesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// RecipeFilter - Filter object for database query, resolved from
// ListRecipesRequest by the service (viewer-relative filters become ids)
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Offset      int
	Limit       int
}

// ============ RESPONSE DTOs ============

// RecipeResponse is the full recipe projection
type RecipeResponse struct {
	ID               uuid.UUID         `json:"id"`
	Author           user.UserResponse `json:"author"`
	Tags             []tag.Tag         `json:"tags"`
	Ingredients      []IngredientLine  `json:"ingredients"`
	Name             string            `json:"name"`
	Image            string            `json:"image"`
	Text             string            `json:"text"`
	CookingTime      int               `json:"cooking_time"`
	IsFavorited      bool              `json:"is_favorited"`
	IsInShoppingCart bool              `json:"is_in_shopping_cart"`
}

// RecipeMinified is the short projection used in favorites, carts and
// subscription listings
type RecipeMinified struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// ToResponse builds the full projection. Relation flags are viewer
// relative and must be supplied by the caller.
func (r *Recipe) ToResponse(isSubscribed, isFavorited, isInCart bool) *RecipeResponse {
	tags := r.Tags
	if tags == nil {
		tags = []tag.Tag{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []IngredientLine{}
	}
	return &RecipeResponse{
		ID:               r.ID,
		Author:           r.Author.ToResponse(isSubscribed),
		Tags:             tags,
		Ingredients:      ingredients,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
	}
}

// ToMinified builds the short projection
func (r *Recipe) ToMinified() RecipeMinified {
	return RecipeMinified{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
