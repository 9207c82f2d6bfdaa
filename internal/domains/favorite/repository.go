package favorite

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the favorites data access contract
type Repository interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) error
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
}
