package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/pkg/jwt"
)

// UserIDKey is the gin context key holding the authenticated user ID
const UserIDKey = "userID"

// AuthMiddleware rejects requests without a valid Bearer access token
// and stores the authenticated user ID in the context.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, jwtManager)
		if !ok {
			c.JSON(401, gin.H{"error": "invalid or missing authorization token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user identity when a valid token is
// present but lets anonymous requests through. Read-side projections use
// the absence of a user ID to report is_favorited / is_in_shopping_cart
// as false.
func OptionalAuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, jwtManager); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// resolveUser extracts and validates the Bearer token from the request
func resolveUser(c *gin.Context, jwtManager *jwt.Manager) (uuid.UUID, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, false
	}

	claims, err := jwtManager.ValidateAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// CurrentUserID returns the authenticated user ID from the context.
// The second return value is false for anonymous requests.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}
