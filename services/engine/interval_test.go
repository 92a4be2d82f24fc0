package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"slotify/models"
)

var day = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func tr(startHour, startMin, endHour, endMin int) models.TimeRange {
	return models.TimeRange{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b models.TimeRange
		want bool
	}{
		{"partial overlap", tr(9, 0, 11, 0), tr(10, 0, 12, 0), true},
		{"a contains b", tr(9, 0, 17, 0), tr(10, 0, 11, 0), true},
		{"disjoint", tr(9, 0, 10, 0), tr(11, 0, 12, 0), false},
		{"touching endpoints", tr(9, 0, 10, 0), tr(10, 0, 11, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	a := tr(9, 0, 10, 0)
	assert.True(t, Overlaps(a, a))
}

func TestContains(t *testing.T) {
	outer := tr(9, 0, 17, 0)
	assert.True(t, Contains(outer, tr(9, 0, 17, 0)), "equal ranges")
	assert.True(t, Contains(outer, tr(9, 0, 10, 0)), "shared start")
	assert.True(t, Contains(outer, tr(16, 0, 17, 0)), "shared end")
	assert.False(t, Contains(outer, tr(8, 59, 10, 0)), "starts before outer")
	assert.False(t, Contains(outer, tr(16, 30, 17, 1)), "ends after outer")
}

func TestIsAdjacent(t *testing.T) {
	a := tr(9, 0, 10, 0)
	b := tr(10, 0, 11, 0)
	assert.True(t, IsAdjacent(a, b, 0), "touching endpoints are adjacent at default tolerance")
	assert.True(t, IsAdjacent(b, a, 0), "adjacency is symmetric")

	c := models.TimeRange{Start: b.Start.Add(30 * time.Second), End: b.End}
	assert.True(t, IsAdjacent(a, c, 0), "30s gap is within the default minute tolerance")

	d := tr(10, 5, 11, 0)
	assert.False(t, IsAdjacent(a, d, 0), "5 minute gap is not adjacent")
	assert.True(t, IsAdjacent(a, d, 5*time.Minute), "unless tolerance widens")
}
