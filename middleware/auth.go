package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventoz/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and checks it has not
// been revoked. On success the user ID and role are placed in the
// request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// A token missing from the auth cache has been revoked or expired
		// out of the cache; either way it no longer signs the user in.
		ctx := context.Background()
		key := utils.AuthCachePrefix + utils.HashToken(tokenString)
		if err := utils.GetAuthCacheClient().Get(ctx, key).Err(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, sign in again"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
