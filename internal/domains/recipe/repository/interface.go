package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
)

// RepositoryInterface defines recipe data access methods.
// Create and Update write the recipe row together with its tag and
// ingredient sets in one transaction.
type RepositoryInterface interface {
	Create(ctx context.Context, recipe *model.Recipe, tagIDs []uuid.UUID, lines []model.IngredientLineRequest) error
	Update(ctx context.Context, recipe *model.Recipe, tagIDs *[]uuid.UUID, lines *[]model.IngredientLineRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context, filter *model.RecipeFilter) ([]model.Recipe, int, error)
	ListMinifiedByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]model.RecipeMinified, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
