package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mmqops/booking-api/internal/config"
)

// DiscordNotifier posts messages as webhook embeds.
type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
}

func NewDiscord(webhookURL, username string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		username:   username,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFromConfig returns a Discord notifier when a webhook URL is configured,
// otherwise a console notifier so alerts still land somewhere visible.
func NewFromConfig(conf *config.NotifierConfig) Notifier {
	if conf == nil || conf.WebhookURL == "" {
		zap.L().Warn("no webhook URL configured, notifications go to the log only")
		return NewConsole()
	}

	return NewDiscord(conf.WebhookURL, conf.Username)
}

type discordEmbed struct {
	Title     string  `json:"title"`
	Color     int     `json:"color"`
	Fields    []Field `json:"fields"`
	Timestamp string  `json:"timestamp"`
}

type discordPayload struct {
	Username string         `json:"username,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

func (n *DiscordNotifier) Notify(ctx context.Context, msg Message) error {
	payload := discordPayload{
		Username: n.username,
		Embeds: []discordEmbed{
			{
				Title:     msg.Title,
				Color:     msg.Color,
				Fields:    msg.Fields,
				Timestamp: msg.Timestamp.UTC().Format(time.RFC3339),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("n.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned %v: %s", resp.StatusCode, respBody)
	}

	return nil
}
