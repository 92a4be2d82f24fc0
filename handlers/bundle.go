// File: slotify/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public booking endpoints.
	SessionTiersHandler   gin.HandlerFunc
	CandidateSlotsHandler gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc

	// Admin auth endpoints.
	AdminLoginHandler  gin.HandlerFunc
	AdminLogoutHandler gin.HandlerFunc

	// Admin availability endpoints.
	DeclareRangesHandler   gin.HandlerFunc
	DeclareFromChatHandler gin.HandlerFunc
	ListRangesHandler      gin.HandlerFunc
	ReplaceBlockHandler    gin.HandlerFunc
	DeleteRangeHandler     gin.HandlerFunc
	ResetRangesHandler     gin.HandlerFunc

	// Admin appointment endpoints.
	ListAppointmentsHandler  gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc
	ResetAppointmentsHandler gin.HandlerFunc

	// Admin notification endpoints.
	SendTestNotificationHandler gin.HandlerFunc
}
