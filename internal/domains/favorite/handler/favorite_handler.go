package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/favorite"
	recipemodel "foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

type FavoriteHandler struct {
	favoriteService favorite.Service
}

func NewFavoriteHandler(favoriteService favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add puts a recipe into the user's favorites
// POST /api/v1/recipes/:id/favorite
func (h *FavoriteHandler) Add(c *gin.Context) {
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

	resp, err := h.favoriteService.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Remove takes a recipe out of the user's favorites
// DELETE /api/v1/recipes/:id/favorite
func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	if err := h.favoriteService.Remove(c.Request.Context(), userID, recipeID); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipemodel.ErrRecipeNotFound),
		errors.Is(err, favorite.ErrNotFavorited):
		response.NotFound(c, err.Error())
	case errors.Is(err, favorite.ErrAlreadyFavorited):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
