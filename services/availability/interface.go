// File: services/availability/interface.go
package availability

import (
	"context"

	"slotify/models"
)

// FailedRange records one range of a batch that could not be applied.
type FailedRange struct {
	Range  models.RawRange `json:"range"`
	Reason string          `json:"reason"`
}

// ApplyResult reports the outcome of a batch declaration. Conflict
// resolution is best-effort, not atomic: failures are collected here and the
// remaining ranges are still applied, so callers must re-fetch to reconcile.
type ApplyResult struct {
	Applied []models.AvailabilityRange `json:"applied"`
	Failed  []FailedRange              `json:"failed,omitempty"`
}

// Partial reports whether some ranges in the batch failed to apply.
func (r *ApplyResult) Partial() bool {
	return len(r.Failed) > 0
}

// Service manages operator-declared availability ranges.
type Service interface {
	// DeclareRanges validates, consolidates and stores a batch of drawn
	// selections under one category, deleting any overlapping stored range
	// of that category first (last-write-wins).
	DeclareRanges(ctx context.Context, selections []models.RawRange, category string) (*ApplyResult, error)
	// DeclareFromChat runs free text through the availability parser and
	// feeds the result into the same declare pipeline.
	DeclareFromChat(ctx context.Context, text, category string) (*ApplyResult, error)
	// ReplaceBlock deletes the original ranges behind a merged block and
	// declares a replacement range in their place.
	ReplaceBlock(ctx context.Context, originalIDs []string, replacement models.RawRange, category string) (*ApplyResult, error)
	ListRanges(ctx context.Context, category string) ([]models.AvailabilityRange, error)
	MergedBlocks(ctx context.Context, category string) ([]models.MergedBlock, error)
	DeleteRange(ctx context.Context, rangeID string) error
	ResetRanges(ctx context.Context) (int64, error)
}
