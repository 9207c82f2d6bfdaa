package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ingredient "foodgram-backend/internal/domains/ingredient"
	"foodgram-backend/internal/shared/response"
)

type IngredientHandler struct {
	repo ingredient.Repository
}

func NewIngredientHandler(repo ingredient.Repository) *IngredientHandler {
	return &IngredientHandler{repo: repo}
}

// List returns ingredients filtered by name prefix, unpaginated
// GET /api/v1/ingredients?name=<prefix>
func (h *IngredientHandler) List(c *gin.Context) {
	namePrefix := c.Query("name")

	ingredients, err := h.repo.List(c.Request.Context(), namePrefix)
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	if ingredients == nil {
		ingredients = []ingredient.Ingredient{}
	}
	response.Success(c, http.StatusOK, ingredients)
}

// GetByID returns one ingredient
// GET /api/v1/ingredients/:id
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid ingredient ID")
		return
	}

	i, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ingredient.ErrIngredientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, i)
}
