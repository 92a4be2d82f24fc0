package engine

import (
	"sort"
	"time"

	"slotify/models"
)

// Business-hours window: candidate slots must start at or after 08:00 and
// end by 20:00 in the display timezone.
const (
	BusinessOpenHour  = 8
	BusinessCloseHour = 20
)

// StepFor returns the grid step for a requested duration: standard and
// extended sessions move in half-hour increments, consultations in
// quarter-hour increments.
func StepFor(durationMinutes int) int {
	if durationMinutes >= 60 {
		return 30
	}
	return 15
}

// GenerateSlots expands availability ranges into chronologically ordered
// candidate slots of the requested duration, deduped by start timestamp.
// Slots starting before notBefore are skipped, the business-hours window is
// enforced in loc, and each slot is tagged against the confirmed
// appointments. A range shorter than the duration yields no slots; a final
// partial region that does not fit a full duration is dropped.
func GenerateSlots(
	ranges []models.AvailabilityRange,
	durationMinutes int,
	appts []models.Appointment,
	notBefore time.Time,
	loc *time.Location,
) []models.CandidateSlot {
	if durationMinutes <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(StepFor(durationMinutes)) * time.Minute

	seen := make(map[int64]bool)
	var slots []models.CandidateSlot
	for _, r := range ranges {
		for cursor := r.Start; !cursor.Add(duration).After(r.End); cursor = cursor.Add(step) {
			if cursor.Before(notBefore) {
				continue
			}
			end := cursor.Add(duration)
			if !withinBusinessHours(cursor, end, loc) {
				continue
			}
			if seen[cursor.UnixMilli()] {
				continue
			}
			seen[cursor.UnixMilli()] = true
			slots = append(slots, models.CandidateSlot{
				Start:           cursor,
				End:             end,
				DurationMinutes: durationMinutes,
				Available:       !overlapsAny(models.TimeRange{Start: cursor, End: end}, appts),
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots
}

// AvailableSlots filters GenerateSlots down to the bookable candidates.
func AvailableSlots(
	ranges []models.AvailabilityRange,
	durationMinutes int,
	appts []models.Appointment,
	notBefore time.Time,
	loc *time.Location,
) []models.CandidateSlot {
	var out []models.CandidateSlot
	for _, s := range GenerateSlots(ranges, durationMinutes, appts, notBefore, loc) {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

func withinBusinessHours(start, end time.Time, loc *time.Location) bool {
	return start.In(loc).Hour() >= BusinessOpenHour && end.In(loc).Hour() <= BusinessCloseHour
}

func overlapsAny(r models.TimeRange, appts []models.Appointment) bool {
	for _, a := range appts {
		if Overlaps(r, a.Range()) {
			return true
		}
	}
	return false
}
