package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/subscription"
	"foodgram-backend/internal/domains/user"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

type SubscriptionHandler struct {
	subscriptionService subscription.Service
}

func NewSubscriptionHandler(subscriptionService subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe follows an author
// POST /api/v1/users/:id/subscribe?recipes_limit=
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user ID")
		return
	}

	recipesLimit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.Subscribe(c.Request.Context(), userID, authorID, recipesLimit)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Unsubscribe unfollows an author
// DELETE /api/v1/users/:id/subscribe
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user ID")
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSubscriptions returns the authors the user follows with recipe previews
// GET /api/v1/users/subscriptions?page=&limit=&recipes_limit=
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	recipesLimit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}

	req := subscription.ListSubscriptionsRequest{RecipesLimit: recipesLimit}
	req.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	req.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	authors, total, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), userID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	req.Normalize()
	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// parseRecipesLimit reads the recipes_limit query parameter. Absent means
// no truncation; anything non-integer is rejected, not ignored.
func parseRecipesLimit(c *gin.Context) (int, bool) {
	raw := c.Query("recipes_limit")
	if raw == "" {
		return -1, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		response.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "recipes_limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}

func (h *SubscriptionHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, subscription.ErrNotSubscribed):
		response.NotFound(c, err.Error())
	case errors.Is(err, subscription.ErrAlreadySubscribed),
		errors.Is(err, subscription.ErrSelfSubscription):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
