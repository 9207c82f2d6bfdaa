package cart

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
)

// Service toggles cart membership and renders the shopping list
type Service interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMinified, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	ShoppingList(ctx context.Context, userID uuid.UUID) (string, error)
}
