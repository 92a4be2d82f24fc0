package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"
)

// AvailabilityHandler serves the operator's range-management endpoints.
type AvailabilityHandler struct {
	Svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// DeclareRangesHandler handles POST /api/admin/ranges: a batch of calendar
// selections for one category.
func (h *AvailabilityHandler) DeclareRangesHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Category string            `json:"category" binding:"required"`
		Ranges   []models.RawRange `json:"ranges" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.DeclareRanges(c.Request.Context(), req.Ranges, req.Category)
	if err != nil {
		logger.Error("Failed to declare availability", zap.Error(err))
		respondEngineError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Partial() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// DeclareFromChatHandler handles POST /api/admin/ranges/chat: free-text
// availability parsed into ranges before the normal declare pipeline.
func (h *AvailabilityHandler) DeclareFromChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Category string `json:"category" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.DeclareFromChat(c.Request.Context(), req.Message, req.Category)
	if err != nil {
		logger.Warn("Chat availability parse failed", zap.Error(err))
		respondEngineError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Partial() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// ListRangesHandler handles GET /api/admin/ranges?category=&merged=.
func (h *AvailabilityHandler) ListRangesHandler(c *gin.Context) {
	logger := getLogger(c)
	category := c.Query("category")

	if c.Query("merged") == "true" {
		blocks, err := h.Svc.MergedBlocks(c.Request.Context(), category)
		if err != nil {
			logger.Error("Failed to merge availability blocks", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch availability"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"blocks": blocks})
		return
	}

	ranges, err := h.Svc.ListRanges(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to list availability ranges", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranges": ranges})
}

// ReplaceBlockHandler handles PUT /api/admin/ranges/block: a merged block was
// dragged or resized, so its original ranges are replaced by the new interval.
func (h *AvailabilityHandler) ReplaceBlockHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		OriginalIDs []string        `json:"originalIds" binding:"required"`
		Range       models.RawRange `json:"range" binding:"required"`
		Category    string          `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.ReplaceBlock(c.Request.Context(), req.OriginalIDs, req.Range, req.Category)
	if err != nil {
		logger.Error("Failed to replace availability block", zap.Error(err))
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteRangeHandler handles DELETE /api/admin/ranges/:id.
func (h *AvailabilityHandler) DeleteRangeHandler(c *gin.Context) {
	logger := getLogger(c)

	rangeID := c.Param("id")
	if err := h.Svc.DeleteRange(c.Request.Context(), rangeID); err != nil {
		logger.Warn("Failed to delete availability range", zap.String("rangeID", rangeID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "range not found", rangeID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ResetRangesHandler handles DELETE /api/admin/ranges: clears all declared
// availability.
func (h *AvailabilityHandler) ResetRangesHandler(c *gin.Context) {
	logger := getLogger(c)

	n, err := h.Svc.ResetRanges(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reset availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
