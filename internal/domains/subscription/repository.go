package subscription

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/user"
)

// Repository is the subscriptions data access contract
type Repository interface {
	Create(ctx context.Context, userID, authorID uuid.UUID) error
	Delete(ctx context.Context, userID, authorID uuid.UUID) error
	// ListAuthors returns one page of authors the user follows, newest
	// subscription first, plus the total count
	ListAuthors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]user.User, int, error)
}
