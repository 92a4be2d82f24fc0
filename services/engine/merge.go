package engine

import (
	"sort"
	"time"

	"slotify/models"
)

// MergeAdjacent coalesces stored ranges into minimal consolidated blocks.
// Two ranges merge iff they share a category, fall on the same calendar day
// in loc, and are adjacent within the tolerance after sorting by start.
// Merging an already-merged set returns the same set.
func MergeAdjacent(ranges []models.AvailabilityRange, tolerance time.Duration, loc *time.Location) []models.MergedBlock {
	if len(ranges) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	sorted := make([]models.AvailabilityRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var blocks []models.MergedBlock
	cur := blockFrom(sorted[0])
	for _, r := range sorted[1:] {
		sameDay := sameCalendarDay(cur.Start, r.Start, loc)
		adjacent := IsAdjacent(models.TimeRange{Start: cur.Start, End: cur.End}, r.Range(), tolerance)
		if r.Category == cur.Category && sameDay && adjacent {
			if r.End.After(cur.End) {
				cur.End = r.End
			}
			cur.RangeIDs = append(cur.RangeIDs, r.ID)
			continue
		}
		cur.DurationMinutes = int(cur.End.Sub(cur.Start) / time.Minute)
		blocks = append(blocks, cur)
		cur = blockFrom(r)
	}
	cur.DurationMinutes = int(cur.End.Sub(cur.Start) / time.Minute)
	blocks = append(blocks, cur)
	return blocks
}

// ConsolidateSelections merges freshly drawn same-day adjacent selections
// before submission so a grid of cells collapses into minimal ranges. All
// selections in one call share the category chosen by the operator, so only
// day and adjacency gate the merge.
func ConsolidateSelections(ranges []models.RawRange, tolerance time.Duration, loc *time.Location) []models.RawRange {
	if len(ranges) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	sorted := make([]models.RawRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var out []models.RawRange
	cur := sorted[0]
	for _, r := range sorted[1:] {
		sameDay := sameCalendarDay(cur.Start, r.Start, loc)
		adjacent := IsAdjacent(
			models.TimeRange{Start: cur.Start, End: cur.End},
			models.TimeRange{Start: r.Start, End: r.End},
			tolerance,
		)
		if sameDay && adjacent {
			if r.End.After(cur.End) {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)
	return out
}

func blockFrom(r models.AvailabilityRange) models.MergedBlock {
	return models.MergedBlock{
		Start:    r.Start,
		End:      r.End,
		Category: r.Category,
		RangeIDs: []string{r.ID},
	}
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
