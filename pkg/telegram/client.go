// Package telegram implements the outbound messaging collaborator: a
// thin client for the Bot API sendMessage endpoint.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"telegram-auth/pkg/utils"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when BOT_TOKEN was not provided. The
// server starts without it; only deliveries fail.
var ErrNotConfigured = errors.New("BOT_TOKEN not configured")

// Sender delivers a text message to a Telegram chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type Client struct {
	token   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewClient(config utils.TelegramConfig, log *zap.Logger) *Client {
	return &Client{
		token:   config.BotToken,
		baseURL: config.APIURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With(zap.String("component", "telegram")),
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage posts text to the chat with HTML formatting enabled.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal sendMessage request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Telegram request failed",
			zap.Error(err),
			zap.String("chat_id", chatID),
		)
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("Telegram API returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("chat_id", chatID),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("telegram API status %d", resp.StatusCode)
	}

	return nil
}
