// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"slotify/models"
)

// BookingLeadTime is how far ahead of now the earliest bookable slot may
// start. Same-day bookings are not offered.
const BookingLeadTime = 24 * time.Hour

// Service exposes the client-facing booking flows and the admin views over
// confirmed appointments.
type Service interface {
	// SessionTiers lists the bookable session offerings.
	SessionTiers() []models.SessionTier
	// CandidateSlots computes the aligned slot grid for one session duration,
	// with booked slots tagged unavailable.
	CandidateSlots(ctx context.Context, durationMinutes int) ([]models.CandidateSlot, error)
	// Book validates the requested slot against current availability and
	// confirmed appointments, then stores the appointment.
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	DeleteAppointment(ctx context.Context, apptID string) error
	ResetAppointments(ctx context.Context) (int64, error)
}
