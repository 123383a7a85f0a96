package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Nithinrathna/interview-prep/internal/auth"
	"github.com/Nithinrathna/interview-prep/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// UserKey is the gin context key under which Auth stores the resolved
// current user.
const UserKey = "user"

// UserResolver looks up the account a validated token belongs to.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth validates the bearer token and resolves the current user record
// before the handler runs. Missing, malformed, expired and
// unknown-user tokens are all rejected with 401.
func Auth(tokens *auth.TokenManager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is missing"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
