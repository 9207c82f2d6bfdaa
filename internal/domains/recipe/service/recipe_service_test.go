package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/ingredient"
	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/tag"
)

// =====================================================
// FAKES
// =====================================================

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*model.Recipe

	lastTagIDs *[]uuid.UUID
	lastLines  *[]model.IngredientLineRequest
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[uuid.UUID]*model.Recipe)}
}

func (f *fakeRecipeRepo) Create(_ context.Context, recipe *model.Recipe, tagIDs []uuid.UUID, lines []model.IngredientLineRequest) error {
	f.recipes[recipe.ID] = recipe
	f.lastTagIDs = &tagIDs
	f.lastLines = &lines
	return nil
}

func (f *fakeRecipeRepo) Update(_ context.Context, recipe *model.Recipe, tagIDs *[]uuid.UUID, lines *[]model.IngredientLineRequest) error {
	if _, ok := f.recipes[recipe.ID]; !ok {
		return model.ErrRecipeNotFound
	}
	f.recipes[recipe.ID] = recipe
	f.lastTagIDs = tagIDs
	f.lastLines = lines
	return nil
}

func (f *fakeRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.recipes[id]; !ok {
		return model.ErrRecipeNotFound
	}
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, ok := f.recipes[id]
	if !ok {
		return nil, model.ErrRecipeNotFound
	}
	return rec, nil
}

func (f *fakeRecipeRepo) List(_ context.Context, _ *model.RecipeFilter) ([]model.Recipe, int, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepo) ListMinifiedByAuthor(_ context.Context, _ uuid.UUID, _ int) ([]model.RecipeMinified, error) {
	return nil, nil
}

func (f *fakeRecipeRepo) CountByAuthor(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.recipes), nil
}

type fakeRefRepo struct {
	known map[uuid.UUID]bool
}

func newFakeRefRepo(ids ...uuid.UUID) *fakeRefRepo {
	known := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &fakeRefRepo{known: known}
}

func (f *fakeRefRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var found []uuid.UUID
	for _, id := range ids {
		if f.known[id] {
			found = append(found, id)
		}
	}
	return found, nil
}

type fakeTagRepo struct{ *fakeRefRepo }

func (f fakeTagRepo) List(_ context.Context) ([]tag.Tag, error) { return nil, nil }

func (f fakeTagRepo) GetByID(_ context.Context, _ uuid.UUID) (*tag.Tag, error) { return nil, nil }

type fakeIngredientRepo struct{ *fakeRefRepo }

func (f fakeIngredientRepo) List(_ context.Context, _ string) ([]ingredient.Ingredient, error) {
	return nil, nil
}

func (f fakeIngredientRepo) GetByID(_ context.Context, _ uuid.UUID) (*ingredient.Ingredient, error) {
	return nil, nil
}

type fakeStorage struct {
	uploads int
}

func (f *fakeStorage) UploadBase64(_ context.Context, _ string) (string, error) {
	f.uploads++
	return "http://localhost:9000/foodgram/recipes/test.png", nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, task *asynq.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

type fakeRelations struct{}

func (fakeRelations) Subscribed(_ context.Context, _, _ uuid.UUID) (bool, error) { return false, nil }
func (fakeRelations) Favorited(_ context.Context, _, _ uuid.UUID) (bool, error)  { return false, nil }
func (fakeRelations) InCart(_ context.Context, _, _ uuid.UUID) (bool, error)     { return false, nil }

// =====================================================
// FIXTURE
// =====================================================

type fixture struct {
	service  ServiceInterface
	repo     *fakeRecipeRepo
	storage  *fakeStorage
	enqueuer *fakeEnqueuer

	tagID        uuid.UUID
	ingredientID uuid.UUID
	authorID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:         newFakeRecipeRepo(),
		storage:      &fakeStorage{},
		enqueuer:     &fakeEnqueuer{},
		tagID:        uuid.New(),
		ingredientID: uuid.New(),
		authorID:     uuid.New(),
	}
	f.service = NewRecipeService(
		f.repo,
		fakeTagRepo{newFakeRefRepo(f.tagID)},
		fakeIngredientRepo{newFakeRefRepo(f.ingredientID)},
		f.storage,
		f.enqueuer,
		fakeRelations{},
	)
	return f
}

func (f *fixture) validCreateRequest() *model.CreateRecipeRequest {
	return &model.CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		Image:       "data:image/png;base64,aGVsbG8=",
		CookingTime: 20,
		Tags:        []uuid.UUID{f.tagID},
		Ingredients: []model.IngredientLineRequest{{ID: f.ingredientID, Amount: 200}},
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", resp.Name)
	assert.Equal(t, 20, resp.CookingTime)
	assert.Equal(t, "http://localhost:9000/foodgram/recipes/test.png", resp.Image)
	assert.False(t, resp.IsFavorited)
	assert.False(t, resp.IsInShoppingCart)
	assert.Equal(t, 1, f.storage.uploads)
	assert.Empty(t, f.enqueuer.tasks)
}

func TestCreateRecipeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture, req *model.CreateRecipeRequest)
		wantErr error
	}{
		{
			name:    "no ingredients",
			mutate:  func(f *fixture, req *model.CreateRecipeRequest) { req.Ingredients = nil },
			wantErr: model.ErrNoIngredients,
		},
		{
			name:    "no tags",
			mutate:  func(f *fixture, req *model.CreateRecipeRequest) { req.Tags = nil },
			wantErr: model.ErrNoTags,
		},
		{
			name: "duplicate ingredient",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Ingredients = append(req.Ingredients, model.IngredientLineRequest{ID: f.ingredientID, Amount: 50})
			},
			wantErr: model.ErrDuplicateIngredient,
		},
		{
			name: "duplicate tag",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Tags = append(req.Tags, f.tagID)
			},
			wantErr: model.ErrDuplicateTag,
		},
		{
			name: "unknown ingredient",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Ingredients = []model.IngredientLineRequest{{ID: uuid.New(), Amount: 50}}
			},
			wantErr: model.ErrUnknownIngredient,
		},
		{
			name: "unknown tag",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Tags = []uuid.UUID{uuid.New()}
			},
			wantErr: model.ErrUnknownTag,
		},
		{
			name: "amount below minimum",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Ingredients[0].Amount = 0
			},
			wantErr: model.ErrAmountOutOfRange,
		},
		{
			name: "amount above maximum",
			mutate: func(f *fixture, req *model.CreateRecipeRequest) {
				req.Ingredients[0].Amount = 2001
			},
			wantErr: model.ErrAmountOutOfRange,
		},
		{
			name:    "cooking time below minimum",
			mutate:  func(f *fixture, req *model.CreateRecipeRequest) { req.CookingTime = 0 },
			wantErr: model.ErrCookingTimeOutOfRange,
		},
		{
			name:    "cooking time above maximum",
			mutate:  func(f *fixture, req *model.CreateRecipeRequest) { req.CookingTime = 201 },
			wantErr: model.ErrCookingTimeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := f.validCreateRequest()
			tt.mutate(f, req)

			_, err := f.service.Create(context.Background(), f.authorID, req)
			assert.ErrorIs(t, err, tt.wantErr)
			// No image should reach storage when validation fails
			assert.Zero(t, f.storage.uploads)
		})
	}
}

func TestCreateRecipeBoundaryValues(t *testing.T) {
	for _, cookingTime := range []int{model.MinCookingTime, model.MaxCookingTime} {
		f := newFixture(t)
		req := f.validCreateRequest()
		req.CookingTime = cookingTime
		req.Ingredients[0].Amount = model.MaxAmount

		_, err := f.service.Create(context.Background(), f.authorID, req)
		assert.NoError(t, err)
	}
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdateRecipeOnlyAuthor(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	name := "Waffles"
	_, err = f.service.Update(context.Background(), uuid.New(), resp.ID, &model.UpdateRecipeRequest{Name: &name})
	assert.ErrorIs(t, err, model.ErrNotRecipeAuthor)
}

func TestUpdateRecipeOmittedSetsUntouched(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	name := "Waffles"
	updated, err := f.service.Update(context.Background(), f.authorID, resp.ID, &model.UpdateRecipeRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Waffles", updated.Name)
	// Omitted tag and ingredient sets must reach the repository as nil
	assert.Nil(t, f.repo.lastTagIDs)
	assert.Nil(t, f.repo.lastLines)
}

func TestUpdateRecipeReplacesProvidedSets(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	lines := []model.IngredientLineRequest{{ID: f.ingredientID, Amount: 77}}
	_, err = f.service.Update(context.Background(), f.authorID, resp.ID, &model.UpdateRecipeRequest{Ingredients: &lines})
	require.NoError(t, err)

	require.NotNil(t, f.repo.lastLines)
	assert.Equal(t, lines, *f.repo.lastLines)
	assert.Nil(t, f.repo.lastTagIDs)
}

func TestUpdateRecipeValidatesProvidedSets(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	empty := []model.IngredientLineRequest{}
	_, err = f.service.Update(context.Background(), f.authorID, resp.ID, &model.UpdateRecipeRequest{Ingredients: &empty})
	assert.ErrorIs(t, err, model.ErrNoIngredients)
}

func TestUpdateRecipeImageReplacementSchedulesCleanup(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	image := "data:image/jpeg;base64,d29ybGQ="
	_, err = f.service.Update(context.Background(), f.authorID, resp.ID, &model.UpdateRecipeRequest{Image: &image})
	require.NoError(t, err)

	require.Len(t, f.enqueuer.tasks, 1)
	assert.Equal(t, model.TypeImageCleanup, f.enqueuer.tasks[0].Type())
}

// =====================================================
// DELETE
// =====================================================

func TestDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(context.Background(), f.authorID, resp.ID))

	_, err = f.service.GetByID(context.Background(), uuid.Nil, resp.ID)
	assert.ErrorIs(t, err, model.ErrRecipeNotFound)

	// The orphaned image goes to the cleanup queue
	require.Len(t, f.enqueuer.tasks, 1)
	assert.Equal(t, model.TypeImageCleanup, f.enqueuer.tasks[0].Type())
}

func TestDeleteRecipeOnlyAuthor(t *testing.T) {
	f := newFixture(t)
	resp, err := f.service.Create(context.Background(), f.authorID, f.validCreateRequest())
	require.NoError(t, err)

	err = f.service.Delete(context.Background(), uuid.New(), resp.ID)
	assert.ErrorIs(t, err, model.ErrNotRecipeAuthor)
}

// =====================================================
// LIST
// =====================================================

func TestListRejectsBadAuthorFilter(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.service.List(context.Background(), uuid.Nil, &model.ListRecipesRequest{Author: "not-a-uuid"})
	assert.ErrorIs(t, err, model.ErrBadAuthorFilter)
}
