package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"foodgram-backend/internal/domains/user"
	"foodgram-backend/internal/shared/middleware"
)

type stubUserService struct {
	loginCalls       int
	setPasswordCalls int
	loginErr         error
	refreshErr       error
}

func (s *stubUserService) Register(_ context.Context, _ user.RegisterRequest) (*user.UserResponse, error) {
	return &user.UserResponse{}, nil
}

func (s *stubUserService) Login(_ context.Context, _ user.LoginRequest) (*user.LoginResponse, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &user.LoginResponse{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *stubUserService) Refresh(_ context.Context, _ user.RefreshRequest) (*user.RefreshResponse, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return &user.RefreshResponse{AccessToken: "access"}, nil
}

func (s *stubUserService) SetPassword(_ context.Context, _ uuid.UUID, _ user.SetPasswordRequest) error {
	s.setPasswordCalls++
	return nil
}

func (s *stubUserService) GetProfile(_ context.Context, _, _ uuid.UUID) (*user.UserResponse, error) {
	return &user.UserResponse{}, nil
}

func (s *stubUserService) ListUsers(_ context.Context, _ uuid.UUID, _ user.ListUsersRequest) ([]user.UserResponse, int, error) {
	return nil, 0, nil
}

func newAuthTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/users/set_password", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
	}, h.SetPassword)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginMalformedEmailIsBadRequest(t *testing.T) {
	svc := &stubUserService{}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/auth/login", `{"email":"not-an-email","password":"whatever123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Zero(t, svc.loginCalls)
}

func TestSetPasswordShortNewPasswordIsBadRequest(t *testing.T) {
	svc := &stubUserService{}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/users/set_password", `{"current_password":"supersecret1","new_password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Zero(t, svc.setPasswordCalls)
}

func TestServiceValidationErrorIsBadRequest(t *testing.T) {
	// Even when validation fails only inside the service, the client
	// must see a 400, not a 500
	svc := &stubUserService{loginErr: validation.Errors{"email": validation.ErrRequired}}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/auth/login", `{"email":"chef@example.com","password":"supersecret1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.NotContains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
}

func TestRefreshInvalidTokenIsUnauthorized(t *testing.T) {
	svc := &stubUserService{refreshErr: user.ErrInvalidRefreshToken}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/auth/refresh", `{"refresh_token":"garbage"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
