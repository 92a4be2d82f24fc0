package notification

import (
	"context"

	"slotify/models"
)

// Notifier delivers operator notifications about bookings. Delivery is
// best-effort: a booking's success never depends on it.
type Notifier interface {
	NotifyBooking(ctx context.Context, appt models.Appointment) error
	SendTest(ctx context.Context) error
}
