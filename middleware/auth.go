// middleware/jwt_auth.go
package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the authenticated caller's email claim lands in
// the gin context.
const ContextEmailKey = "email"

// JWTAuthMiddleware gates a route behind a valid Bearer token. No credential
// at all is 401; any credential that is present but fails validation, Bearer
// or not, is 403. On success the decoded email claim is attached to the
// context for downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration, then pull the email claim.
		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthenticatedEmail returns the email set by JWTAuthMiddleware.
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	val, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
