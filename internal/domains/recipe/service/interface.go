package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"foodgram-backend/internal/domains/recipe/model"
)

// ServiceInterface defines recipe business logic.
// viewerID is uuid.Nil for anonymous requests; viewer-relative flags
// come back false in that case.
type ServiceInterface interface {
	Create(ctx context.Context, authorID uuid.UUID, req *model.CreateRecipeRequest) (*model.RecipeResponse, error)
	Update(ctx context.Context, userID, recipeID uuid.UUID, req *model.UpdateRecipeRequest) (*model.RecipeResponse, error)
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
	GetByID(ctx context.Context, viewerID, recipeID uuid.UUID) (*model.RecipeResponse, error)
	List(ctx context.Context, viewerID uuid.UUID, req *model.ListRecipesRequest) ([]model.RecipeResponse, int, error)
}

// ImageStorage uploads base64 data URIs to object storage
type ImageStorage interface {
	UploadBase64(ctx context.Context, dataURI string) (string, error)
}

// TaskEnqueuer hands background work to the broker
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

// RelationChecker probes viewer-relative relations
type RelationChecker interface {
	Subscribed(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Favorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	InCart(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
}
