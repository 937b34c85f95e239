package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eeriks/FuelPriceScraper/internal/models"
)

// defaultAPIBaseURL is the Telegram Bot API endpoint.
const defaultAPIBaseURL = "https://api.telegram.org"

// Telegram delivers price change reports to a Telegram channel via the
// Bot API sendMessage method.
type Telegram struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  int64
	logger  zerolog.Logger
}

// sendMessageRequest is the JSON body for the sendMessage call.
type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewTelegram creates a Telegram notifier for the given bot token and
// destination chat.
func NewTelegram(token string, chatID int64, logger zerolog.Logger) *Telegram {
	return &Telegram{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: defaultAPIBaseURL,
		token:   token,
		chatID:  chatID,
		logger:  logger.With().Str("component", "telegram").Logger(),
	}
}

// Notify formats the price change report and posts it to the chat.
func (t *Telegram) Notify(ctx context.Context, providerName string, current models.PriceRecord, delta models.PriceDelta) error {
	message := FormatMessage(providerName, current, delta)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("encoding sendMessage request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(body))
	}

	t.logger.Info().
		Str("provider", providerName).
		Str("message", message).
		Msg("notification sent")

	return nil
}
