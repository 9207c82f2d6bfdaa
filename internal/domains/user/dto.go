package user

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// usernameRegex allows letters, digits and @ . + - _
var usernameRegex = regexp.MustCompile(`^[\w.@+-]+\w$`)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 254),
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(2, 150),
			validation.Match(usernameRegex).Error("only letters, digits and @ . + - _ are allowed"),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshRequest exchanges a refresh token for a fresh access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// SetPasswordRequest changes the password of the authenticated user
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (r SetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// ========================================
// PROJECTIONS
// ========================================

// UserResponse is the user projection exposed by the API.
// IsSubscribed is relative to the requesting user (false when anonymous).
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

type ListUsersRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps pagination to sane defaults
func (r *ListUsersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
