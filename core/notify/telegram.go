package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	iconInfo    = "ℹ️"
	iconSuccess = "✅"
	iconWarning = "⚠️"
	iconError   = "❌"
)

// telegram sends messages through the Telegram Bot API.
type telegram struct {
	token  string
	chatID string
	api    string
	client *http.Client
}

func newTelegram(cfg Config) *telegram {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &telegram{
		token:  cfg.Token,
		chatID: cfg.ChatID,
		api:    "https://api.telegram.org",
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (t *telegram) Info(ctx context.Context, msg string) error {
	return t.send(ctx, formatMessage(iconInfo, "INFO", msg))
}

func (t *telegram) Success(ctx context.Context, msg string) error {
	return t.send(ctx, formatMessage(iconSuccess, "SUCCESS", msg))
}

func (t *telegram) Warning(ctx context.Context, msg string) error {
	return t.send(ctx, formatMessage(iconWarning, "WARNING", msg))
}

func (t *telegram) Error(ctx context.Context, msg string) error {
	return t.send(ctx, formatMessage(iconError, "ERROR", msg))
}

func formatMessage(icon, level, msg string) string {
	m := strings.TrimSpace(msg)
	if m == "" {
		m = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, m)
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (t *telegram) send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: t.chatID, Text: text})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.api, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram send failed: %s: %s", resp.Status, string(respBody))
	}
	return nil
}
