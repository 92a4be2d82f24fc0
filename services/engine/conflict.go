package engine

import "slotify/models"

// OverlappingIDs returns the ids of stored ranges the new range collides
// with under last-write-wins conflict resolution. Only ranges of the same
// category are ever candidates for deletion: a different category's ranges
// are untouched even when their clock time overlaps.
func OverlappingIDs(existing []models.AvailabilityRange, r models.TimeRange, category string) []string {
	var ids []string
	for _, e := range existing {
		if e.Category != category {
			continue
		}
		if Overlaps(e.Range(), r) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// ValidateRangeBounds rejects malformed availability ranges before they
// reach conflict resolution: start must precede end and the length must
// fall within the persistable window.
func ValidateRangeBounds(r models.TimeRange) error {
	if !r.IsValid() {
		return NewInvalidRangeError("range end must be after start")
	}
	minutes := r.Minutes()
	if minutes < models.MinRangeMinutes {
		return NewInvalidRangeError("range shorter than 15 minutes")
	}
	if minutes > models.MaxRangeMinutes {
		return NewInvalidRangeError("range longer than 8 hours")
	}
	return nil
}
