// File: services/booking/service.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appointmentRepo "slotify/database/repository/appointment"
	slotRepo "slotify/database/repository/slot"
	"slotify/models"
	"slotify/services/engine"
	"slotify/services/notification"
	"slotify/utils"
)

const (
	apptCacheKey = "appointments:confirmed"
	apptCacheTTL = 30 * time.Second
)

// DefaultService is the production booking Service.
type DefaultService struct {
	Ranges   slotRepo.AvailabilityRepository
	Appts    appointmentRepo.AppointmentRepository
	Notifier notification.Notifier
	Cache    *redis.Client
	Location *time.Location

	// now is swappable for deterministic tests.
	now func() time.Time
}

func NewService(
	ranges slotRepo.AvailabilityRepository,
	appts appointmentRepo.AppointmentRepository,
	notifier notification.Notifier,
	cache *redis.Client,
	loc *time.Location,
) *DefaultService {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultService{
		Ranges:   ranges,
		Appts:    appts,
		Notifier: notifier,
		Cache:    cache,
		Location: loc,
		now:      time.Now,
	}
}

func (s *DefaultService) SessionTiers() []models.SessionTier {
	return engine.Tiers()
}

func (s *DefaultService) CandidateSlots(ctx context.Context, durationMinutes int) ([]models.CandidateSlot, error) {
	if !engine.ValidDuration(durationMinutes) {
		return nil, engine.NewInvalidRangeError("unsupported session duration")
	}

	category := engine.CategoryFor(durationMinutes)
	ranges, err := s.Ranges.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	appts, err := s.confirmedAppointments(ctx)
	if err != nil {
		return nil, err
	}

	notBefore := s.now().Add(BookingLeadTime)
	return engine.GenerateSlots(ranges, durationMinutes, appts, notBefore, s.Location), nil
}

func (s *DefaultService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	if !engine.ValidDuration(req.DurationMinutes) {
		return nil, engine.NewInvalidRangeError("unsupported session duration")
	}
	if req.Start.Before(s.now().Add(BookingLeadTime)) {
		return nil, engine.NewNotAvailableError("bookings open one day ahead")
	}

	category := engine.CategoryFor(req.DurationMinutes)

	// Validation always runs against fresh state, never the slot cache.
	ranges, err := s.Ranges.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	appts, err := s.Appts.ListConfirmed(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := engine.ValidateBooking(req.Start, req.DurationMinutes, ranges, appts); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		Start:          req.Start,
		End:            req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Category:       category,
		SessionMinutes: req.DurationMinutes,
		SessionType:    engine.SessionTypeFor(req.DurationMinutes),
		ClientName:     req.ClientName,
		ClientContact:  req.ClientContact,
		ClientPhone:    req.ClientPhone,
		Notes:          req.Notes,
		SlotKey:        engine.SlotKey(category, req.Start, req.DurationMinutes),
	}
	if err := s.Appts.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			// Another client won the same slot between validation and insert.
			return nil, engine.NewSlotTakenError("slot was just taken by another booking")
		}
		return nil, err
	}
	s.invalidateApptCache(ctx)

	if s.Notifier != nil {
		// Fire and forget: a notification failure never fails the booking.
		go func(a models.Appointment) {
			nctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.Notifier.NotifyBooking(nctx, a); err != nil {
				utils.GetLogger().Warn("booking notification failed",
					zap.String("appointmentID", a.ID), zap.Error(err))
			}
		}(*appt)
	}

	utils.GetLogger().Info("appointment confirmed",
		zap.String("appointmentID", appt.ID),
		zap.Time("start", appt.Start),
		zap.Int("minutes", appt.SessionMinutes))
	return appt, nil
}

func (s *DefaultService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Appts.ListConfirmed(ctx)
}

func (s *DefaultService) DeleteAppointment(ctx context.Context, apptID string) error {
	if err := s.Appts.DeleteByID(ctx, apptID); err != nil {
		return err
	}
	s.invalidateApptCache(ctx)
	return nil
}

func (s *DefaultService) ResetAppointments(ctx context.Context) (int64, error) {
	n, err := s.Appts.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateApptCache(ctx)
	return n, nil
}

// confirmedAppointments serves slot computation from a short-lived cache so
// calendar browsing does not hammer Mongo. Cache problems degrade to a direct
// read.
func (s *DefaultService) confirmedAppointments(ctx context.Context) ([]models.Appointment, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, apptCacheKey).Result(); err == nil {
			var appts []models.Appointment
			if err := json.Unmarshal([]byte(raw), &appts); err == nil {
				return appts, nil
			}
		}
	}

	appts, err := s.Appts.ListConfirmed(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if data, err := json.Marshal(appts); err == nil {
			if err := s.Cache.Set(ctx, apptCacheKey, data, apptCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("appointment cache write failed", zap.Error(err))
			}
		}
	}
	return appts, nil
}

func (s *DefaultService) invalidateApptCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, apptCacheKey).Err(); err != nil {
		utils.GetLogger().Debug("appointment cache invalidation failed", zap.Error(err))
	}
}
