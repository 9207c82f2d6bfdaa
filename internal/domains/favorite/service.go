package favorite

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
)

// Service toggles the favorite relation between a user and a recipe
type Service interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMinified, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
}
