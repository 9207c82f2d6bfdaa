package subscription

import (
	recipemodel "foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/user"
)

// AuthorResponse is a followed author with a preview of their recipes.
// IsSubscribed is always true here, the viewer follows everyone listed.
type AuthorResponse struct {
	user.UserResponse
	Recipes      []recipemodel.RecipeMinified `json:"recipes"`
	RecipesCount int                          `json:"recipes_count"`
}

// ListSubscriptionsRequest - Query parameters. RecipesLimit truncates
// each author's recipe preview, negative means no truncation.
type ListSubscriptionsRequest struct {
	Page         int
	Limit        int
	RecipesLimit int
}

// Normalize clamps pagination to sane defaults
func (r *ListSubscriptionsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
