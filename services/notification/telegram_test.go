package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

func newTestNotifier(t *testing.T, handler http.HandlerFunc) *TelegramNotifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	n := NewTelegramNotifier("test-token", "12345", time.UTC)
	n.APIBase = srv.URL
	return n
}

func TestNotifyBookingPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	appt := models.Appointment{
		Start:          time.Date(2026, 9, 3, 14, 0, 0, 0, time.UTC),
		End:            time.Date(2026, 9, 3, 15, 0, 0, 0, time.UTC),
		SessionType:    models.SessionStandard,
		SessionMinutes: 60,
		ClientName:     "Olena",
		ClientContact:  "olena@example.com",
		Notes:          "first visit",
	}
	require.NoError(t, n.NotifyBooking(context.Background(), appt))

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Contains(t, gotBody["text"], "Olena")
	assert.Contains(t, gotBody["text"], "60 min")
	assert.Contains(t, gotBody["text"], "olena@example.com")
	assert.Contains(t, gotBody["text"], "first visit")
}

func TestNotifyBookingAPIFailure(t *testing.T) {
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := n.NotifyBooking(context.Background(), models.Appointment{ClientName: "x"})
	assert.ErrorContains(t, err, "403")
}

func TestSendTest(t *testing.T) {
	called := false
	n := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, n.SendTest(context.Background()))
	assert.True(t, called)
}

func TestUnconfiguredNotifier(t *testing.T) {
	n := &TelegramNotifier{}
	err := n.SendTest(context.Background())
	assert.ErrorContains(t, err, "not configured")
}
