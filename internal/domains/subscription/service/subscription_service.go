package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	recipemodel "foodgram-backend/internal/domains/recipe/model"
	reciperepo "foodgram-backend/internal/domains/recipe/repository"
	"foodgram-backend/internal/domains/subscription"
	"foodgram-backend/internal/domains/user"
)

type subscriptionService struct {
	repo    subscription.Repository
	users   user.Repository
	recipes reciperepo.RepositoryInterface
}

func NewSubscriptionService(
	repo subscription.Repository,
	users user.Repository,
	recipes reciperepo.RepositoryInterface,
) subscription.Service {
	return &subscriptionService{
		repo:    repo,
		users:   users,
		recipes: recipes,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID uuid.UUID, recipesLimit int) (*subscription.AuthorResponse, error) {
	// The database CHECK would also reject this, catching it here gives
	// the caller a clean error without a round trip
	if userID == authorID {
		return nil, subscription.ErrSelfSubscription
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, userID, authorID); err != nil {
		return nil, err
	}

	log.Debug().
		Str("user_id", userID.String()).
		Str("author_id", authorID.String()).
		Msg("Subscription created")

	return s.buildAuthorResponse(ctx, author, recipesLimit)
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, authorID)
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, req subscription.ListSubscriptionsRequest) ([]subscription.AuthorResponse, int, error) {
	req.Normalize()

	authors, total, err := s.repo.ListAuthors(ctx, userID, (req.Page-1)*req.Limit, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]subscription.AuthorResponse, 0, len(authors))
	for i := range authors {
		resp, err := s.buildAuthorResponse(ctx, &authors[i], req.RecipesLimit)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *resp)
	}
	return responses, total, nil
}

func (s *subscriptionService) buildAuthorResponse(ctx context.Context, author *user.User, recipesLimit int) (*subscription.AuthorResponse, error) {
	recipes, err := s.recipes.ListMinifiedByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []recipemodel.RecipeMinified{}
	}

	count, err := s.recipes.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &subscription.AuthorResponse{
		UserResponse: author.ToResponse(true),
		Recipes:      recipes,
		RecipesCount: count,
	}, nil
}
