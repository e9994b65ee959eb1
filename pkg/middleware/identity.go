package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"utsav/pkg/utils"
)

// OptionalIdentityMiddleware sets user_id when a valid bearer token is
// present and lets anonymous requests through untouched. Identity is only
// used for dedupe and attribution; its absence never blocks the flow.
func OptionalIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil && claims.UserID != "" {
				c.Set("user_id", claims.UserID)
			}
		}
		c.Next()
	}
}
