package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/viktor11111122222/money-track/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextUserID is the context key the authenticated user's id is stored under.
const ContextUserID = "userID"

// JWTAuthMiddleware validates bearer tokens and stores the user id in the
// request context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
