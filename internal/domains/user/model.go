package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account able to author recipes and follow others
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse builds the user projection. is_subscribed is always computed
// relative to the requesting user and must be supplied by the caller.
func (u *User) ToResponse(isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}
