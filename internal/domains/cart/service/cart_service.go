package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"foodgram-backend/internal/domains/cart"
	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
)

type cartService struct {
	repo    cart.Repository
	recipes repository.RepositoryInterface
}

func NewCartService(repo cart.Repository, recipes repository.RepositoryInterface) cart.Service {
	return &cartService{repo: repo, recipes: recipes}
}

func (s *cartService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMinified, error) {
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
		Msg("Recipe added to cart")

	minified := recipe.ToMinified()
	return &minified, nil
}

func (s *cartService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.repo.Remove(ctx, userID, recipeID)
}

// ShoppingList renders the aggregated cart as plain text, one line per
// ingredient. An empty cart renders an empty document.
func (s *cartService) ShoppingList(ctx context.Context, userID uuid.UUID) (string, error) {
	items, err := s.repo.BuildShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}
	return RenderShoppingList(items), nil
}

// RenderShoppingList formats items as "<name> (<unit>) - <total>" lines
func RenderShoppingList(items []cart.ShoppingListItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return b.String()
}
