package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slotify/utils"
)

// AdminSessionKeyPrefix namespaces admin session hashes in the auth cache.
const AdminSessionKeyPrefix = "adminSession:"

// JWTAuthAdminMiddleware guards the operator API. It requires a bearer token
// that both validates as a signed JWT and is still present in the auth cache,
// so logout revokes access before the token expires.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		// A valid signature is not enough: the session hash must still be in
		// the auth cache, otherwise the token was logged out.
		sessionKey := AdminSessionKeyPrefix + utils.HashToken(tokenString)
		if _, err := utils.GetAuthCacheClient().Get(c.Request.Context(), sessionKey).Result(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
