package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the user business logic contract.
// viewerID is the requesting user identity; uuid.Nil means anonymous.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error)
	SetPassword(ctx context.Context, userID uuid.UUID, req SetPasswordRequest) error
	GetProfile(ctx context.Context, viewerID, targetID uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, viewerID uuid.UUID, req ListUsersRequest) ([]UserResponse, int, error)
}
