package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListRecipesNormalize(t *testing.T) {
	req := ListRecipesRequest{Page: -3, Limit: 500}
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Limit)
}

func TestToResponseEmptySlices(t *testing.T) {
	r := Recipe{ID: uuid.New(), Name: "Toast"}

	resp := r.ToResponse(false, false, false)

	// JSON must render [] rather than null
	assert.NotNil(t, resp.Tags)
	assert.NotNil(t, resp.Ingredients)
	assert.Empty(t, resp.Tags)
	assert.Empty(t, resp.Ingredients)
}

func TestToMinified(t *testing.T) {
	r := Recipe{ID: uuid.New(), Name: "Toast", Image: "http://img/toast.png", CookingTime: 5, Text: "long text"}

	m := r.ToMinified()

	assert.Equal(t, r.ID, m.ID)
	assert.Equal(t, "Toast", m.Name)
	assert.Equal(t, "http://img/toast.png", m.Image)
	assert.Equal(t, 5, m.CookingTime)
}

func TestCreateRecipeRequestValidate(t *testing.T) {
	req := CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry",
		Image:       "data:image/png;base64,aGVsbG8=",
		CookingTime: 20,
	}
	assert.NoError(t, req.Validate())

	req.Name = ""
	assert.Error(t, req.Validate())
}

func TestImageCleanupTaskPayload(t *testing.T) {
	task, err := NewImageCleanupTask("http://localhost:9000/foodgram/recipes/x.png")
	assert.NoError(t, err)
	assert.Equal(t, TypeImageCleanup, task.Type())
	assert.Contains(t, string(task.Payload()), "recipes/x.png")
}
