package engine

import (
	"time"

	"slotify/models"
)

// DefaultAdjacencyTolerance absorbs sub-minute rounding between ranges that
// were drawn or parsed as contiguous.
const DefaultAdjacencyTolerance = time.Minute

// Overlaps reports whether two half-open ranges share any instant.
// Touching endpoints (a.End == b.Start) do not overlap.
func Overlaps(a, b models.TimeRange) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Contains reports whether inner lies fully within outer, endpoints included.
func Contains(outer, inner models.TimeRange) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}

// IsAdjacent reports whether one range ends where the other begins, within
// the given tolerance. A tolerance <= 0 falls back to the default.
func IsAdjacent(a, b models.TimeRange, tolerance time.Duration) bool {
	if tolerance <= 0 {
		tolerance = DefaultAdjacencyTolerance
	}
	return absDuration(a.End.Sub(b.Start)) <= tolerance ||
		absDuration(b.End.Sub(a.Start)) <= tolerance
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
