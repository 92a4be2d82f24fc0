// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	slotRepo "slotify/database/repository/slot"
	"slotify/models"
	"slotify/services/engine"
	ai "slotify/services/intelligence"
	"slotify/utils"
)

// DefaultService is the production Service backed by MongoDB.
type DefaultService struct {
	Repo      slotRepo.AvailabilityRepository
	Parser    ai.AvailabilityParser
	Tolerance time.Duration
	Location  *time.Location
}

func NewService(repo slotRepo.AvailabilityRepository, parser ai.AvailabilityParser, loc *time.Location) *DefaultService {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultService{
		Repo:      repo,
		Parser:    parser,
		Tolerance: engine.DefaultAdjacencyTolerance,
		Location:  loc,
	}
}

func (s *DefaultService) DeclareRanges(ctx context.Context, selections []models.RawRange, category string) (*ApplyResult, error) {
	if category != models.CategoryShort && category != models.CategoryStandard {
		return nil, engine.NewInvalidRangeError(fmt.Sprintf("unknown category %q", category))
	}

	consolidated := engine.ConsolidateSelections(selections, s.Tolerance, s.Location)
	result := &ApplyResult{}

	for _, sel := range consolidated {
		tr := models.TimeRange{Start: sel.Start, End: sel.End}
		if err := engine.ValidateRangeBounds(tr); err != nil {
			result.Failed = append(result.Failed, FailedRange{Range: sel, Reason: err.Error()})
			continue
		}

		// Last write wins: clear stored ranges of this category that the new
		// one overlaps, then insert. Each range is applied independently so a
		// failure here does not abort the rest of the batch.
		removed, err := s.Repo.DeleteOverlapping(ctx, tr, category)
		if err != nil {
			utils.GetLogger().Error("failed to resolve overlapping ranges",
				zap.Time("start", tr.Start), zap.Time("end", tr.End), zap.Error(err))
			result.Failed = append(result.Failed, FailedRange{Range: sel, Reason: err.Error()})
			continue
		}
		if removed > 0 {
			utils.GetLogger().Info("replaced overlapping availability",
				zap.Int64("removed", removed), zap.String("category", category))
		}

		rng := models.AvailabilityRange{
			Start:           tr.Start,
			End:             tr.End,
			DurationMinutes: tr.Minutes(),
			Category:        category,
		}
		created, err := s.Repo.CreateMany(ctx, []models.AvailabilityRange{rng})
		if err != nil {
			utils.GetLogger().Error("failed to store availability range",
				zap.Time("start", tr.Start), zap.Time("end", tr.End), zap.Error(err))
			result.Failed = append(result.Failed, FailedRange{Range: sel, Reason: err.Error()})
			continue
		}
		result.Applied = append(result.Applied, created...)
	}

	return result, nil
}

func (s *DefaultService) DeclareFromChat(ctx context.Context, text, category string) (*ApplyResult, error) {
	if s.Parser == nil {
		return nil, fmt.Errorf("availability parser not configured")
	}
	parsed, err := s.Parser.ParseAvailability(ctx, text, time.Now().In(s.Location))
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, engine.NewParseEmptyError("no time ranges recognized in message")
	}
	return s.DeclareRanges(ctx, parsed, category)
}

func (s *DefaultService) ReplaceBlock(ctx context.Context, originalIDs []string, replacement models.RawRange, category string) (*ApplyResult, error) {
	for _, id := range originalIDs {
		if err := s.Repo.DeleteByID(ctx, id); err != nil {
			utils.GetLogger().Warn("failed to delete original range during block replace",
				zap.String("rangeID", id), zap.Error(err))
		}
	}
	return s.DeclareRanges(ctx, []models.RawRange{replacement}, category)
}

func (s *DefaultService) ListRanges(ctx context.Context, category string) ([]models.AvailabilityRange, error) {
	if category == "" {
		return s.Repo.ListAll(ctx)
	}
	return s.Repo.ListByCategory(ctx, category)
}

func (s *DefaultService) MergedBlocks(ctx context.Context, category string) ([]models.MergedBlock, error) {
	ranges, err := s.ListRanges(ctx, category)
	if err != nil {
		return nil, err
	}
	return engine.MergeAdjacent(ranges, s.Tolerance, s.Location), nil
}

func (s *DefaultService) DeleteRange(ctx context.Context, rangeID string) error {
	return s.Repo.DeleteByID(ctx, rangeID)
}

func (s *DefaultService) ResetRanges(ctx context.Context) (int64, error) {
	return s.Repo.DeleteAll(ctx)
}
