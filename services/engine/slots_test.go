package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

func availRange(id string, r models.TimeRange, category string) models.AvailabilityRange {
	return models.AvailabilityRange{
		ID:              id,
		Start:           r.Start,
		End:             r.End,
		DurationMinutes: r.Minutes(),
		Category:        category,
	}
}

func TestGenerateSlotsStandardDay(t *testing.T) {
	// [09:00,17:00) with 60-minute sessions on a 30-minute grid yields
	// 09:00..16:00; nothing starts at 16:30 because 16:30+60 > 17:00.
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 17, 0), models.CategoryStandard),
	}
	slots := GenerateSlots(ranges, 60, nil, time.Time{}, time.UTC)
	require.Len(t, slots, 15)
	assert.True(t, slots[0].Start.Equal(day.Add(9*time.Hour)))
	assert.True(t, slots[len(slots)-1].Start.Equal(day.Add(16*time.Hour)))
	for i, s := range slots {
		assert.False(t, s.End.After(day.Add(17*time.Hour)), "slot %d exceeds range bound", i)
		if i > 0 {
			assert.Equal(t, 30*time.Minute, s.Start.Sub(slots[i-1].Start))
		}
	}
}

func TestGenerateSlotsConsultationStep(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 10, 0), models.CategoryShort),
	}
	slots := GenerateSlots(ranges, 15, nil, time.Time{}, time.UTC)
	require.Len(t, slots, 4)
	assert.True(t, slots[1].Start.Equal(day.Add(9*time.Hour+15*time.Minute)))
}

func TestGenerateSlotsRangeTooShort(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 9, 45), models.CategoryStandard),
	}
	assert.Empty(t, GenerateSlots(ranges, 60, nil, time.Time{}, time.UTC))
}

func TestGenerateSlotsPartialTailDropped(t *testing.T) {
	// [09:00,10:10): only 09:00 fits a 60-minute slot; the 10-minute
	// remainder is dropped, not rounded.
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 10, 10), models.CategoryStandard),
	}
	slots := GenerateSlots(ranges, 60, nil, time.Time{}, time.UTC)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(day.Add(9*time.Hour)))
}

func TestGenerateSlotsBusinessHours(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(6, 0, 9, 0), models.CategoryStandard),
	}
	slots := GenerateSlots(ranges, 60, nil, time.Time{}, time.UTC)
	require.Len(t, slots, 1, "only the 08:00 start is inside business hours")
	assert.True(t, slots[0].Start.Equal(day.Add(8*time.Hour)))
}

func TestGenerateSlotsDedupeAcrossRanges(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 11, 0), models.CategoryStandard),
		availRange("r2", tr(10, 0, 12, 0), models.CategoryStandard),
	}
	slots := GenerateSlots(ranges, 60, nil, time.Time{}, time.UTC)
	seen := make(map[int64]bool)
	for i, s := range slots {
		assert.False(t, seen[s.Start.UnixMilli()], "duplicate start at index %d", i)
		seen[s.Start.UnixMilli()] = true
		if i > 0 {
			assert.True(t, slots[i-1].Start.Before(s.Start), "slots must be chronological")
		}
	}
	// 09:00..10:00 from r1, 10:30 and 11:00 from r2, with 10:00 deduped.
	require.Len(t, slots, 5)
}

func TestGenerateSlotsMarksBooked(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 12, 0), models.CategoryStandard),
	}
	appts := []models.Appointment{{
		Start:  day.Add(10 * time.Hour),
		End:    day.Add(11 * time.Hour),
		Status: models.StatusConfirmed,
	}}
	slots := GenerateSlots(ranges, 60, appts, time.Time{}, time.UTC)
	for _, s := range slots {
		wantAvailable := !Overlaps(models.TimeRange{Start: s.Start, End: s.End}, appts[0].Range())
		assert.Equal(t, wantAvailable, s.Available, "slot %s", s.Start.Format("15:04"))
	}
	available := AvailableSlots(ranges, 60, appts, time.Time{}, time.UTC)
	for _, s := range available {
		assert.True(t, s.Available)
	}
	assert.Less(t, len(available), len(slots))
}

func TestGenerateSlotsSkipsPast(t *testing.T) {
	ranges := []models.AvailabilityRange{
		availRange("r1", tr(9, 0, 12, 0), models.CategoryStandard),
	}
	cutoff := day.Add(10*time.Hour + 1*time.Minute)
	slots := GenerateSlots(ranges, 60, nil, cutoff, time.UTC)
	require.NotEmpty(t, slots)
	assert.True(t, slots[0].Start.Equal(day.Add(10*time.Hour+30*time.Minute)))
}

func TestStepFor(t *testing.T) {
	assert.Equal(t, 15, StepFor(15))
	assert.Equal(t, 30, StepFor(60))
	assert.Equal(t, 30, StepFor(90))
}
