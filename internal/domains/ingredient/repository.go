package ingredient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the ingredient data access contract.
// Ingredients are seeded reference data; there is no write path.
type Repository interface {
	// List returns ingredients whose name starts with namePrefix
	// (case-insensitive). Empty prefix returns everything.
	List(ctx context.Context, namePrefix string) ([]Ingredient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Ingredient, error)
	// ExistingIDs returns the subset of ids that reference stored ingredients
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
