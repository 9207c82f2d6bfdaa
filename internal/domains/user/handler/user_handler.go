package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/user"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration data", err.Error())
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login exchanges credentials for an access token
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid login data", err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new access token
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid refresh data", err.Error())
		return
	}

	resp, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// SetPassword changes the password of the authenticated user
// POST /api/v1/users/set_password
func (h *UserHandler) SetPassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid password data", err.Error())
		return
	}

	if err := h.userService.SetPassword(c.Request.Context(), userID, req); err != nil {
		h.mapError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe returns the authenticated user's own profile
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.userService.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProfile returns a user profile by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user ID")
		return
	}

	// Anonymous viewers see is_subscribed = false
	viewerID, _ := middleware.CurrentUserID(c)

	resp, err := h.userService.GetProfile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListUsers lists registered users
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	viewerID, _ := middleware.CurrentUserID(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), viewerID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// mapError translates domain errors into HTTP responses
func (h *UserHandler) mapError(c *gin.Context, err error) {
	// Services re-run DTO validation on their own; those failures are
	// still client errors, never 500s
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request data", err.Error())
		return
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, user.ErrUsernameTaken):
		response.ErrorResponse(c, http.StatusBadRequest, "CONFLICT", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidRefreshToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, user.ErrWrongPassword):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
