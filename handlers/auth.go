package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slotify/config"
	"slotify/middleware"
	"slotify/utils"
)

// adminSessionTTL bounds both the JWT lifetime and the auth-cache entry.
const adminSessionTTL = 12 * time.Hour

// AuthHandler serves operator login and logout.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginHandler checks the shared admin password and issues a session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		logger.Error("Admin login attempted without ADMIN_PASSWORD_HASH configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin access not configured"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		logger.Warn("Admin login failed", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := utils.GenerateToken("admin", adminSessionTTL)
	if err != nil {
		logger.Error("Failed to generate admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	sessionKey := middleware.AdminSessionKeyPrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(c.Request.Context(), sessionKey, "1", adminSessionTTL).Err(); err != nil {
		logger.Error("Failed to store admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminSessionTTL.Seconds()),
	})
}

// LogoutHandler revokes the current session token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	sessionKey := middleware.AdminSessionKeyPrefix + utils.HashToken(tokenString)
	if err := utils.GetAuthCacheClient().Del(c.Request.Context(), sessionKey).Err(); err != nil {
		logger.Error("Failed to revoke admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
