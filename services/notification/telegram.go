package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts booking notifications to the operator's Telegram
// chat via the Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	Location *time.Location
	Client   *http.Client
	// APIBase is overridable for tests.
	APIBase string
}

func NewTelegramNotifier(botToken, chatID string, loc *time.Location) *TelegramNotifier {
	if loc == nil {
		loc = time.UTC
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		Location: loc,
		Client:   &http.Client{Timeout: 10 * time.Second},
		APIBase:  telegramAPIBase,
	}
}

func (n *TelegramNotifier) NotifyBooking(ctx context.Context, appt models.Appointment) error {
	start := appt.Start.In(n.Location)
	end := appt.End.In(n.Location)

	text := fmt.Sprintf(
		"New booking\n\nClient: %s\nSession: %s (%d min)\nWhen: %s - %s",
		appt.ClientName,
		appt.SessionType,
		appt.SessionMinutes,
		start.Format("Mon, 02 Jan 2006 15:04"),
		end.Format("15:04"),
	)
	if appt.ClientContact != "" {
		text += "\nContact: " + appt.ClientContact
	}
	if appt.ClientPhone != "" {
		text += "\nPhone: " + appt.ClientPhone
	}
	if appt.Notes != "" {
		text += "\nNotes: " + appt.Notes
	}

	return n.sendMessage(ctx, text)
}

func (n *TelegramNotifier) SendTest(ctx context.Context) error {
	return n.sendMessage(ctx, "Test notification: the booking bot is connected.")
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, text string) error {
	if n.BotToken == "" || n.ChatID == "" {
		return fmt.Errorf("telegram notifier not configured: missing bot token or chat id")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": n.ChatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	base := n.APIBase
	if base == "" {
		base = telegramAPIBase
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", base, n.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	utils.GetLogger().Debug("telegram notification sent", zap.String("chatId", n.ChatID))
	return nil
}
