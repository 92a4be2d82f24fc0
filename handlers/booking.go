package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/services/booking"
	"slotify/utils"
)

// BookingHandler serves the public booking endpoints and the admin views over
// confirmed appointments.
type BookingHandler struct {
	Svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// SessionTiersHandler handles GET /api/sessions.
func (h *BookingHandler) SessionTiersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Svc.SessionTiers()})
}

// CandidateSlotsHandler handles GET /api/slots?duration=.
func (h *BookingHandler) CandidateSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a number of minutes"})
		return
	}

	slots, err := h.Svc.CandidateSlots(c.Request.Context(), duration)
	if err != nil {
		logger.Error("Failed to compute candidate slots", zap.Int("duration", duration), zap.Error(err))
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.Time("start", req.Start), zap.Int("duration", req.DurationMinutes), zap.Error(err))
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	appts, err := h.Svc.ListAppointments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DeleteAppointmentHandler handles DELETE /api/admin/appointments/:id.
func (h *BookingHandler) DeleteAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	apptID := c.Param("id")
	if err := h.Svc.DeleteAppointment(c.Request.Context(), apptID); err != nil {
		logger.Warn("Failed to delete appointment", zap.String("appointmentID", apptID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "appointment not found", apptID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ResetAppointmentsHandler handles DELETE /api/admin/appointments.
func (h *BookingHandler) ResetAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	n, err := h.Svc.ResetAppointments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reset appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
