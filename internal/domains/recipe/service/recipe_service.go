package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"foodgram-backend/internal/domains/ingredient"
	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
	"foodgram-backend/internal/domains/tag"
)

type recipeService struct {
	repo        repository.RepositoryInterface
	tags        tag.Repository
	ingredients ingredient.Repository
	storage     ImageStorage
	tasks       TaskEnqueuer
	relations   RelationChecker
}

func NewRecipeService(
	repo repository.RepositoryInterface,
	tags tag.Repository,
	ingredients ingredient.Repository,
	storage ImageStorage,
	tasks TaskEnqueuer,
	relations RelationChecker,
) ServiceInterface {
	return &recipeService{
		repo:        repo,
		tags:        tags,
		ingredients: ingredients,
		storage:     storage,
		tasks:       tasks,
		relations:   relations,
	}
}

// =====================================================
// WRITES
// =====================================================

func (s *recipeService) Create(ctx context.Context, authorID uuid.UUID, req *model.CreateRecipeRequest) (*model.RecipeResponse, error) {
	// Step 1: Validate tag and ingredient sets before touching storage
	if req.CookingTime < model.MinCookingTime || req.CookingTime > model.MaxCookingTime {
		return nil, model.ErrCookingTimeOutOfRange
	}
	if err := s.validateTagSet(ctx, req.Tags); err != nil {
		return nil, err
	}
	if err := s.validateIngredientSet(ctx, req.Ingredients); err != nil {
		return nil, err
	}

	// Step 2: Upload the image so the recipe row stores a plain URL
	imageURL, err := s.storage.UploadBase64(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	// Step 3: Atomic write of recipe + tags + ingredient lines
	if err := s.repo.Create(ctx, recipe, req.Tags, req.Ingredients); err != nil {
		s.scheduleImageCleanup(ctx, imageURL)
		return nil, err
	}

	log.Info().
		Str("recipe_id", recipe.ID.String()).
		Str("author_id", authorID.String()).
		Msg("Recipe created")

	return s.project(ctx, authorID, recipe.ID)
}

func (s *recipeService) Update(ctx context.Context, userID, recipeID uuid.UUID, req *model.UpdateRecipeRequest) (*model.RecipeResponse, error) {
	existing, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, model.ErrNotRecipeAuthor
	}

	// Validate provided sets up front, provided means full replacement
	if req.Tags != nil {
		if err := s.validateTagSet(ctx, *req.Tags); err != nil {
			return nil, err
		}
	}
	if req.Ingredients != nil {
		if err := s.validateIngredientSet(ctx, *req.Ingredients); err != nil {
			return nil, err
		}
	}
	if req.CookingTime != nil {
		if *req.CookingTime < model.MinCookingTime || *req.CookingTime > model.MaxCookingTime {
			return nil, model.ErrCookingTimeOutOfRange
		}
		existing.CookingTime = *req.CookingTime
	}
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Text != nil {
		existing.Text = *req.Text
	}

	oldImageURL := ""
	if req.Image != nil {
		imageURL, err := s.storage.UploadBase64(ctx, *req.Image)
		if err != nil {
			return nil, err
		}
		oldImageURL = existing.Image
		existing.Image = imageURL
	}

	if err := s.repo.Update(ctx, existing, req.Tags, req.Ingredients); err != nil {
		if req.Image != nil {
			s.scheduleImageCleanup(ctx, existing.Image)
		}
		return nil, err
	}

	// The replaced image is now orphaned
	if oldImageURL != "" {
		s.scheduleImageCleanup(ctx, oldImageURL)
	}

	log.Info().
		Str("recipe_id", recipeID.String()).
		Msg("Recipe updated")

	return s.project(ctx, userID, recipeID)
}

func (s *recipeService) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return model.ErrNotRecipeAuthor
	}

	if err := s.repo.Delete(ctx, recipeID); err != nil {
		return err
	}

	s.scheduleImageCleanup(ctx, existing.Image)

	log.Info().
		Str("recipe_id", recipeID.String()).
		Msg("Recipe deleted")
	return nil
}

// =====================================================
// READS
// =====================================================

func (s *recipeService) GetByID(ctx context.Context, viewerID, recipeID uuid.UUID) (*model.RecipeResponse, error) {
	return s.project(ctx, viewerID, recipeID)
}

func (s *recipeService) List(ctx context.Context, viewerID uuid.UUID, req *model.ListRecipesRequest) ([]model.RecipeResponse, int, error) {
	req.Normalize()

	filter := &model.RecipeFilter{
		TagSlugs: req.Tags,
		Offset:   (req.Page - 1) * req.Limit,
		Limit:    req.Limit,
	}
	if req.Author != "" {
		authorID, err := uuid.Parse(req.Author)
		if err != nil {
			return nil, 0, model.ErrBadAuthorFilter
		}
		filter.AuthorID = &authorID
	}
	// Viewer-relative filters. For anonymous viewers uuid.Nil matches no
	// rows, which mirrors filtering against an empty relation set.
	if req.IsFavorited {
		filter.FavoritedBy = &viewerID
	}
	if req.IsInShoppingCart {
		filter.InCartOf = &viewerID
	}

	recipes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.buildResponse(ctx, viewerID, &recipes[i])
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *resp)
	}
	return responses, total, nil
}

// =====================================================
// HELPERS
// =====================================================

func (s *recipeService) project(ctx context.Context, viewerID, recipeID uuid.UUID) (*model.RecipeResponse, error) {
	recipe, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, viewerID, recipe)
}

func (s *recipeService) buildResponse(ctx context.Context, viewerID uuid.UUID, recipe *model.Recipe) (*model.RecipeResponse, error) {
	isSubscribed, err := s.relations.Subscribed(ctx, viewerID, recipe.AuthorID)
	if err != nil {
		return nil, err
	}
	isFavorited, err := s.relations.Favorited(ctx, viewerID, recipe.ID)
	if err != nil {
		return nil, err
	}
	isInCart, err := s.relations.InCart(ctx, viewerID, recipe.ID)
	if err != nil {
		return nil, err
	}
	return recipe.ToResponse(isSubscribed, isFavorited, isInCart), nil
}

func (s *recipeService) validateTagSet(ctx context.Context, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return model.ErrNoTags
	}
	seen := make(map[uuid.UUID]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seen[id]; dup {
			return model.ErrDuplicateTag
		}
		seen[id] = struct{}{}
	}

	found, err := s.tags.ExistingIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to validate tags: %w", err)
	}
	if len(found) != len(tagIDs) {
		return model.ErrUnknownTag
	}
	return nil
}

func (s *recipeService) validateIngredientSet(ctx context.Context, lines []model.IngredientLineRequest) error {
	if len(lines) == 0 {
		return model.ErrNoIngredients
	}

	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if line.Amount < model.MinAmount || line.Amount > model.MaxAmount {
			return model.ErrAmountOutOfRange
		}
		if _, dup := seen[line.ID]; dup {
			return model.ErrDuplicateIngredient
		}
		seen[line.ID] = struct{}{}
		ids = append(ids, line.ID)
	}

	found, err := s.ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to validate ingredients: %w", err)
	}
	if len(found) != len(ids) {
		return model.ErrUnknownIngredient
	}
	return nil
}

// scheduleImageCleanup hands the orphaned object to the worker. Enqueue
// failure is logged, not returned, the recipe write already succeeded.
func (s *recipeService) scheduleImageCleanup(ctx context.Context, imageURL string) {
	task, err := model.NewImageCleanupTask(imageURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build image cleanup task")
		return
	}
	if err := s.tasks.Enqueue(ctx, task); err != nil {
		log.Error().Err(err).Str("image_url", imageURL).Msg("Failed to enqueue image cleanup")
	}
}
