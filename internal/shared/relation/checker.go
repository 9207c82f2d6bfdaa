package relation

import (
	"context"

	"github.com/google/uuid"
)

// Checker bundles the three relation probes behind one dependency that
// services can accept as a narrow interface.
type Checker struct {
	q Querier
}

func NewChecker(q Querier) *Checker {
	return &Checker{q: q}
}

func (c *Checker) Subscribed(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return Exists(ctx, c.q, Subscription, userID, authorID)
}

func (c *Checker) Favorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return Exists(ctx, c.q, Favorite, userID, recipeID)
}

func (c *Checker) InCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return Exists(ctx, c.q, ShoppingCart, userID, recipeID)
}
