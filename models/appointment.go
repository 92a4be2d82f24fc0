package models

import "time"

// Appointment statuses. There is no cancellation state machine; an
// appointment either exists as confirmed or has been deleted by the operator.
const StatusConfirmed = "confirmed"

// Session tier labels keyed by requested duration in minutes.
const (
	SessionConsultation = "consultation_15"
	SessionStandard     = "session_60"
	SessionExtended     = "session_90"
)

// Appointment is a committed booking occupying a sub-interval of some
// availability range of the matching category.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	Start          time.Time `bson:"start" json:"start"`
	End            time.Time `bson:"end" json:"end"`
	Category       string    `bson:"category" json:"category"`
	SessionMinutes int       `bson:"sessionMinutes" json:"sessionMinutes"`
	SessionType    string    `bson:"sessionType" json:"sessionType"`
	ClientName     string    `bson:"clientName" json:"clientName"`
	ClientContact  string    `bson:"clientContact,omitempty" json:"clientContact,omitempty"`
	ClientPhone    string    `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string    `bson:"status" json:"status"`
	// SlotKey is the normalized slot identity (category|start|duration) that
	// carries the unique index closing the concurrent double-booking race.
	SlotKey   string    `bson:"slotKey" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Range returns the appointment's occupied time interval.
func (a Appointment) Range() TimeRange {
	return TimeRange{Start: a.Start, End: a.End}
}

// BookingRequest is the client payload for creating an appointment.
type BookingRequest struct {
	Start           time.Time `json:"start" binding:"required"`
	DurationMinutes int       `json:"duration" binding:"required"`
	ClientName      string    `json:"name" binding:"required"`
	ClientContact   string    `json:"contact"`
	ClientPhone     string    `json:"phone"`
	Notes           string    `json:"notes"`
}
