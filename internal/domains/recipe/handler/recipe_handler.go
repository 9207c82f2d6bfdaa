package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/service"
	"foodgram-backend/internal/infrastructure/storage"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// RECIPE HANDLER
// =====================================================

type RecipeHandler struct {
	recipeService service.ServiceInterface
}

func NewRecipeHandler(recipeService service.ServiceInterface) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Create publishes a new recipe
// POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe data", err.Error())
		return
	}

	resp, err := h.recipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update modifies an existing recipe, author only
// PATCH /api/v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe ID")
		return
	}

	var req model.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe data", err.Error())
		return
	}

	resp, err := h.recipeService.Update(c.Request.Context(), userID, recipeID, &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete removes a recipe, author only
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe ID")
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), userID, recipeID); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetByID returns one recipe with viewer-relative flags
// GET /api/v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe ID")
		return
	}

	viewerID, _ := middleware.CurrentUserID(c)

	resp, err := h.recipeService.GetByID(c.Request.Context(), viewerID, recipeID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List returns recipes newest first with optional filters
// GET /api/v1/recipes?author=&tags=&is_favorited=&is_in_shopping_cart=&page=&limit=
func (h *RecipeHandler) List(c *gin.Context) {
	var req model.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	viewerID, _ := middleware.CurrentUserID(c)

	recipes, total, err := h.recipeService.List(c.Request.Context(), viewerID, &req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, recipes, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// mapError translates domain errors into HTTP responses
func (h *RecipeHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrNotRecipeAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrNoIngredients),
		errors.Is(err, model.ErrNoTags),
		errors.Is(err, model.ErrUnknownIngredient),
		errors.Is(err, model.ErrUnknownTag),
		errors.Is(err, model.ErrDuplicateIngredient),
		errors.Is(err, model.ErrDuplicateTag),
		errors.Is(err, model.ErrAmountOutOfRange),
		errors.Is(err, model.ErrCookingTimeOutOfRange),
		errors.Is(err, model.ErrBadAuthorFilter),
		errors.Is(err, storage.ErrInvalidImage):
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
