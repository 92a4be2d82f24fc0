// File: services/booking/service_test.go
package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentRepo "slotify/database/repository/appointment"
	"slotify/models"
	"slotify/services/engine"
)

type fakeRangeRepo struct {
	ranges []models.AvailabilityRange
}

func (f *fakeRangeRepo) CreateMany(ctx context.Context, ranges []models.AvailabilityRange) ([]models.AvailabilityRange, error) {
	f.ranges = append(f.ranges, ranges...)
	return ranges, nil
}

func (f *fakeRangeRepo) DeleteOverlapping(ctx context.Context, tr models.TimeRange, category string) (int64, error) {
	return 0, nil
}

func (f *fakeRangeRepo) ListByCategory(ctx context.Context, category string) ([]models.AvailabilityRange, error) {
	var out []models.AvailabilityRange
	for _, r := range f.ranges {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRangeRepo) ListAll(ctx context.Context) ([]models.AvailabilityRange, error) {
	return f.ranges, nil
}

func (f *fakeRangeRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func (f *fakeRangeRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(f.ranges))
	f.ranges = nil
	return n, nil
}

func (f *fakeRangeRepo) EnsureIndexes() error { return nil }

// fakeApptRepo enforces slot key uniqueness the way the Mongo index does.
type fakeApptRepo struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (f *fakeApptRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appts {
		if a.SlotKey == appt.SlotKey {
			return appointmentRepo.ErrSlotConflict
		}
	}
	appt.ID = uuid.NewString()
	appt.Status = models.StatusConfirmed
	appt.CreatedAt = time.Now()
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeApptRepo) ListConfirmed(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment(nil), f.appts...), nil
}

func (f *fakeApptRepo) DeleteByID(ctx context.Context, apptID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.appts {
		if a.ID == apptID {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeApptRepo) DeleteAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.appts))
	f.appts = nil
	return n, nil
}

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []models.Appointment
	tests int
}

func (f *fakeNotifier) NotifyBooking(ctx context.Context, appt models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, appt)
	return nil
}

func (f *fakeNotifier) SendTest(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tests++
	return nil
}

var clock = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// newTestService wires a service over fakes with a frozen clock. Ranges are
// placed two days out so the one-day lead time never interferes.
func newTestService() (*DefaultService, *fakeRangeRepo, *fakeApptRepo, *fakeNotifier) {
	ranges := &fakeRangeRepo{}
	appts := &fakeApptRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(ranges, appts, notifier, nil, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, ranges, appts, notifier
}

func standardRange(startHour, endHour int) models.AvailabilityRange {
	day := clock.AddDate(0, 0, 2).Truncate(24 * time.Hour)
	start := day.Add(time.Duration(startHour) * time.Hour)
	end := day.Add(time.Duration(endHour) * time.Hour)
	return models.AvailabilityRange{
		ID:              uuid.NewString(),
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
		Category:        models.CategoryStandard,
	}
}

func bookingAt(start time.Time, minutes int) models.BookingRequest {
	return models.BookingRequest{
		Start:           start,
		DurationMinutes: minutes,
		ClientName:      "Olena",
		ClientContact:   "olena@example.com",
	}
}

func TestSessionTiers(t *testing.T) {
	svc, _, _, _ := newTestService()
	tiers := svc.SessionTiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, 15, tiers[0].DurationMinutes)
	assert.Equal(t, 60, tiers[1].DurationMinutes)
	assert.Equal(t, 90, tiers[2].DurationMinutes)
}

func TestCandidateSlots(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	slots, err := svc.CandidateSlots(context.Background(), 60)
	require.NoError(t, err)
	// [09:00, 12:00) with 60-minute sessions on a 30-minute grid.
	require.Len(t, slots, 5)
	assert.Equal(t, r.Start, slots[0].Start)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestCandidateSlotsRejectsUnknownDuration(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.CandidateSlots(context.Background(), 45)
	assert.True(t, engine.HasCode(err, engine.CodeInvalidRange))
}

func TestBookHappyPath(t *testing.T) {
	svc, ranges, appts, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	appt, err := svc.Book(context.Background(), bookingAt(r.Start, 60))
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusConfirmed, appt.Status)
	assert.Equal(t, models.CategoryStandard, appt.Category)
	assert.Equal(t, models.SessionStandard, appt.SessionType)
	assert.Equal(t, r.Start.Add(time.Hour), appt.End)

	stored, err := appts.ListConfirmed(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// The covering range is untouched by the booking.
	left, err := ranges.ListByCategory(context.Background(), models.CategoryStandard)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, r.Start, left[0].Start)
	assert.Equal(t, r.End, left[0].End)
}

func TestBookMarksSlotUnavailable(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	_, err := svc.Book(context.Background(), bookingAt(r.Start, 60))
	require.NoError(t, err)

	slots, err := svc.CandidateSlots(context.Background(), 60)
	require.NoError(t, err)
	for _, s := range slots {
		if s.Start.Before(r.Start.Add(time.Hour)) {
			assert.False(t, s.Available, "slot at %v should be taken", s.Start)
		}
	}

	// The exact same slot is refused.
	_, err = svc.Book(context.Background(), bookingAt(r.Start, 60))
	assert.True(t, engine.HasCode(err, engine.CodeSlotTaken))
}

func TestBookOutsideAvailability(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	// Starts inside but runs past the end of the range.
	_, err := svc.Book(context.Background(), bookingAt(r.End.Add(-30*time.Minute), 60))
	assert.True(t, engine.HasCode(err, engine.CodeNotAvailable))
}

func TestBookWrongCategory(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	// Consultations draw from the short pool, which is empty.
	_, err := svc.Book(context.Background(), bookingAt(r.Start, 15))
	assert.True(t, engine.HasCode(err, engine.CodeNotAvailable))
}

func TestBookLeadTime(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	// Same-day request, even inside a declared range, is refused.
	soon := clock.Add(2 * time.Hour)
	_, err := svc.Book(context.Background(), bookingAt(soon, 60))
	assert.True(t, engine.HasCode(err, engine.CodeNotAvailable))
}

func TestBookInsertConflictMapsToSlotTaken(t *testing.T) {
	svc, ranges, appts, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	// Simulate a racing booking that landed after validation would have
	// passed: pre-seed the repo with the same slot key but no overlap data
	// the validator could see (validator reads ListConfirmed, so use a
	// direct insert with the colliding key only).
	key := engine.SlotKey(models.CategoryStandard, r.Start, 60)
	appts.appts = append(appts.appts, models.Appointment{
		ID:      uuid.NewString(),
		SlotKey: key,
		// Zero Start/End keeps the overlap scan blind to it.
		Status: models.StatusConfirmed,
	})

	_, err := svc.Book(context.Background(), bookingAt(r.Start, 60))
	assert.True(t, engine.HasCode(err, engine.CodeSlotTaken))
}

func TestBookNotifies(t *testing.T) {
	svc, ranges, _, notifier := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	_, err := svc.Book(context.Background(), bookingAt(r.Start, 60))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return len(notifier.sent) == 1
	}, 2*time.Second, 10*time.Millisecond)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, "Olena", notifier.sent[0].ClientName)
}

func TestDeleteAndResetAppointments(t *testing.T) {
	svc, ranges, _, _ := newTestService()
	r := standardRange(9, 12)
	ranges.ranges = append(ranges.ranges, r)

	first, err := svc.Book(context.Background(), bookingAt(r.Start, 60))
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), bookingAt(r.Start.Add(time.Hour), 60))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAppointment(context.Background(), first.ID))
	left, err := svc.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Len(t, left, 1)

	n, err := svc.ResetAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
