package tag

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the tag data access contract.
// Tags are seeded by migration; there is no write path.
type Repository interface {
	List(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
