package models

import "time"

// Session categories. Two standard-length sessions (60 and 90 minutes)
// share one category and therefore one pool of availability ranges.
const (
	CategoryShort    = "15min"
	CategoryStandard = "60min"
)

// Persisted availability ranges must fall within these duration bounds.
const (
	MinRangeMinutes = 15
	MaxRangeMinutes = 480
)

// TimeRange is a half-open interval [Start, End) on absolute instants.
type TimeRange struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Minutes returns the range length in whole minutes.
func (r TimeRange) Minutes() int {
	return int(r.End.Sub(r.Start) / time.Minute)
}

// IsValid reports whether the range is well-formed (start strictly before end).
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// AvailabilityRange is an operator-declared interval during which sessions
// of one category may be booked.
type AvailabilityRange struct {
	ID              string    `bson:"id" json:"id"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Category        string    `bson:"category" json:"category"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Range returns the availability range's time interval.
func (a AvailabilityRange) Range() TimeRange {
	return TimeRange{Start: a.Start, End: a.End}
}

// MergedBlock is a consolidated view of one or more adjacent same-category
// ranges, used by the admin calendar to render a single draggable block.
type MergedBlock struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category"`
	RangeIDs        []string  `json:"rangeIds"`
}
