package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user data access contract
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, page, limit int) ([]*User, int, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
