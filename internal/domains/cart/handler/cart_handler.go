package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/cart"
	recipemodel "foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

type CartHandler struct {
	cartService cart.Service
}

func NewCartHandler(cartService cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add puts a recipe into the user's shopping cart
// POST /api/v1/recipes/:id/shopping_cart
func (h *CartHandler) Add(c *gin.Context) {
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

	resp, err := h.cartService.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Remove takes a recipe out of the user's shopping cart
// DELETE /api/v1/recipes/:id/shopping_cart
func (h *CartHandler) Remove(c *gin.Context) {
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

	if err := h.cartService.Remove(c.Request.Context(), userID, recipeID); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadShoppingList streams the aggregated list as a text attachment
// GET /api/v1/recipes/download_shopping_cart
func (h *CartHandler) DownloadShoppingList(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	doc, err := h.cartService.ShoppingList(c.Request.Context(), userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+cart.ShoppingListFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
}

func (h *CartHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipemodel.ErrRecipeNotFound),
		errors.Is(err, cart.ErrNotInCart):
		response.NotFound(c, err.Error())
	case errors.Is(err, cart.ErrAlreadyInCart):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
