package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodgram-backend/internal/domains/user"
	"foodgram-backend/pkg/jwt"
)

// SubscriptionChecker reports whether viewer follows author
type SubscriptionChecker interface {
	Subscribed(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}

// userService implements user.Service
type userService struct {
	repo          user.Repository
	subscriptions SubscriptionChecker
	jwtManager    *jwt.Manager
}

func NewUserService(repo user.Repository, subscriptions SubscriptionChecker, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:          repo,
		subscriptions: subscriptions,
		jwtManager:    jwtManager,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserResponse, error) {
	// Validation already ran at the handler, but services stay safe on their own
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// bcrypt cost 12: balance between security and login latency
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}

	// Uniqueness of username/email is enforced by the storage constraints;
	// the repository translates violations into domain errors.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	resp := newUser.ToResponse(false)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u.ToResponse(false),
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshRequest) (*user.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	// The account may have been removed since the token was issued
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *userService) SetPassword(ctx context.Context, userID uuid.UUID, req user.SetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePasswordHash(ctx, userID, string(newHash))
}

// ========================================
// PROFILES
// ========================================

func (s *userService) GetProfile(ctx context.Context, viewerID, targetID uuid.UUID) (*user.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	isSubscribed, err := s.subscriptions.Subscribed(ctx, viewerID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}

	resp := u.ToResponse(isSubscribed)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, viewerID uuid.UUID, req user.ListUsersRequest) ([]user.UserResponse, int, error) {
	req.Normalize()

	users, total, err := s.repo.List(ctx, req.Page, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		isSubscribed, err := s.subscriptions.Subscribed(ctx, viewerID, u.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("check subscription: %w", err)
		}
		responses = append(responses, u.ToResponse(isSubscribed))
	}

	return responses, total, nil
}
