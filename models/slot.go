package models

import "time"

// CandidateSlot is a derived, unpersisted bookable start-time produced by
// expanding an availability range at a fixed step. Available is false when
// the slot collides with a confirmed appointment.
type CandidateSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Available       bool      `json:"available"`
}

// SessionTier describes one bookable session length for display.
type SessionTier struct {
	DurationMinutes int    `json:"durationMinutes"`
	Label           string `json:"label"`
	Description     string `json:"description"`
	Category        string `json:"category"`
}

// RawRange is an unvalidated time range as produced by the availability
// chat parser or a drag selection, before duration bounds are enforced.
type RawRange struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
