package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"optiroute/auth"
	"optiroute/types"
)

const userContextKey = "user"

// UserLoader fetches the latest user document for validated claims. The
// Firestore store satisfies this; tests plug in a stub.
type UserLoader interface {
	GetUser(ctx context.Context, uid string) (*types.User, error)
}

// Authenticate validates the bearer token and injects the session user
// into the gin context. The user document is re-read so role changes take
// effect without re-login.
func Authenticate(jwtManager *auth.JWTManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		token, err := auth.ExtractToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFromContext retrieves the session user injected by Authenticate.
func UserFromContext(c *gin.Context) (*types.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*types.User)
	return user, ok
}

// RequireRole gates a route on the session role. An empty allowed set lets
// any authenticated user through; a denial names the caller's actual role.
func RequireRole(allowedRoles ...types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if len(allowedRoles) == 0 {
			c.Next()
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("Access denied: role %q is not permitted here", user.Role),
		})
	}
}
