package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Service manages follows between users
type Service interface {
	Subscribe(ctx context.Context, userID, authorID uuid.UUID, recipesLimit int) (*AuthorResponse, error)
	Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID, req ListSubscriptionsRequest) ([]AuthorResponse, int, error)
}
