package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/services/engine"
)

// respondEngineError translates the booking engine's error taxonomy into HTTP
// responses with a stable machine-readable code.
func respondEngineError(c *gin.Context, err error) {
	var ee *engine.EngineError
	if !errors.As(err, &ee) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "message": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch ee.Code {
	case engine.CodeInvalidRange:
		status = http.StatusBadRequest
	case engine.CodeNotAvailable:
		status = http.StatusNotFound
	case engine.CodeSlotTaken:
		status = http.StatusConflict
	case engine.CodeParseEmpty:
		status = http.StatusUnprocessableEntity
	case engine.CodePartialApply:
		status = http.StatusMultiStatus
	}

	c.JSON(status, gin.H{"error": ee.Code, "message": ee.Message})
}
