package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"foodgram-backend/internal/domains/favorite"
	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
)

type favoriteService struct {
	repo    favorite.Repository
	recipes repository.RepositoryInterface
}

func NewFavoriteService(repo favorite.Repository, recipes repository.RepositoryInterface) favorite.Service {
	return &favoriteService{repo: repo, recipes: recipes}
}

func (s *favoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMinified, error) {
	// Resolve the recipe first so a missing recipe reads as not found,
	// not as a relation conflict
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}

	log.Debug().
		Str("user_id", userID.String()).
		Str("recipe_id", recipeID.String()).
		Msg("Recipe favorited")

	minified := recipe.ToMinified()
	return &minified, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.repo.Remove(ctx, userID, recipeID)
}
