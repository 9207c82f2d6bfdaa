package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the shopping cart data access contract
type Repository interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) error
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	// BuildShoppingList aggregates ingredient amounts across every recipe
	// in the user's cart, largest totals first
	BuildShoppingList(ctx context.Context, userID uuid.UUID) ([]ShoppingListItem, error)
}
