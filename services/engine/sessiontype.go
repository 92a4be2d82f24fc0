package engine

import (
	"fmt"
	"time"

	"slotify/models"
)

// Bookable session lengths in minutes.
const (
	DurationConsultation = 15
	DurationStandard     = 60
	DurationExtended     = 90
)

// CategoryFor maps a requested duration to its storage category. The 15-minute
// consultation has its own pool; both standard lengths (60 and 90) share one,
// so a range sized for a 60-minute session also surfaces for 90-minute
// requests when long enough.
func CategoryFor(durationMinutes int) string {
	if durationMinutes == DurationConsultation {
		return models.CategoryShort
	}
	return models.CategoryStandard
}

// SessionTypeFor maps a requested duration to its display/session label.
func SessionTypeFor(durationMinutes int) string {
	switch durationMinutes {
	case DurationConsultation:
		return models.SessionConsultation
	case DurationExtended:
		return models.SessionExtended
	default:
		return models.SessionStandard
	}
}

// ValidDuration reports whether the requested duration is a bookable tier.
func ValidDuration(durationMinutes int) bool {
	switch durationMinutes {
	case DurationConsultation, DurationStandard, DurationExtended:
		return true
	}
	return false
}

// Tiers lists the bookable session tiers in display order.
func Tiers() []models.SessionTier {
	return []models.SessionTier{
		{
			DurationMinutes: DurationConsultation,
			Label:           "Free consultation",
			Description:     "A short introduction and discussion of your situation",
			Category:        models.CategoryShort,
		},
		{
			DurationMinutes: DurationStandard,
			Label:           "Standard session",
			Description:     "A full therapy session with in-depth analysis",
			Category:        models.CategoryStandard,
		},
		{
			DurationMinutes: DurationExtended,
			Label:           "Extended session",
			Description:     "An extended session for complex cases",
			Category:        models.CategoryStandard,
		},
	}
}

// SlotKey builds the normalized slot identity used for the unique appointment
// index: two bookings of the same grid slot always collide on this key.
func SlotKey(category string, start time.Time, durationMinutes int) string {
	return fmt.Sprintf("%s|%s|%d", category, start.UTC().Format(time.RFC3339), durationMinutes)
}
