package engine

import (
	"time"

	"slotify/models"
)

// ValidateBooking confirms a requested slot lies fully inside an availability
// range of the category implied by the duration and does not overlap any
// confirmed appointment. On success the covering range is returned for
// downstream bookkeeping; booking never shrinks or removes the range itself,
// availability is always recomputed live against confirmed appointments.
//
// This is a pure decision function, not a lock: the appointment write path
// must still enforce slot uniqueness to serialize concurrent bookings.
func ValidateBooking(
	start time.Time,
	durationMinutes int,
	ranges []models.AvailabilityRange,
	appts []models.Appointment,
) (*models.AvailabilityRange, error) {
	requested := models.TimeRange{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
	category := CategoryFor(durationMinutes)

	var covering *models.AvailabilityRange
	for i := range ranges {
		if ranges[i].Category != category {
			continue
		}
		if Contains(ranges[i].Range(), requested) {
			covering = &ranges[i]
			break
		}
	}
	if covering == nil {
		return nil, NewNotAvailableError("requested slot is not inside any availability range")
	}

	// Full envelopment in either direction counts as a conflict, not just
	// partial overlap.
	for _, a := range appts {
		if Overlaps(requested, a.Range()) {
			return nil, NewSlotTakenError("requested slot overlaps a confirmed appointment")
		}
	}

	return covering, nil
}
