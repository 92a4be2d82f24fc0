package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/services/notification"
)

// NotifyHandler lets the operator verify the Telegram channel end to end.
type NotifyHandler struct {
	Notifier notification.Notifier
}

func NewNotifyHandler(n notification.Notifier) *NotifyHandler {
	return &NotifyHandler{Notifier: n}
}

// SendTestHandler handles POST /api/admin/notify/test.
func (h *NotifyHandler) SendTestHandler(c *gin.Context) {
	logger := getLogger(c)

	if h.Notifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notifications not configured"})
		return
	}
	if err := h.Notifier.SendTest(c.Request.Context()); err != nil {
		logger.Error("Test notification failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send test notification", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
