// Package messaging delivers reminder texts to freelancers through the
// Telegram Bot API.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"buffet_festas/internal/config"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultTelegramAPIURL = "https://api.telegram.org"

var (
	ErrMissingBotToken = errors.New("missing TELEGRAM_BOT_TOKEN")
	ErrMissingChatID   = errors.New("missing telegram chat id")
)

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// TelegramGateway implements IMessageGateway with the sendMessage method.
type TelegramGateway struct {
	http    *http.Client
	baseURL string
	token   string
	log     *zap.Logger
}

var _ interfaces.IMessageGateway = (*TelegramGateway)(nil)

func NewTelegramGateway(cfg config.TelegramConfig) (*TelegramGateway, error) {
	token := strings.TrimSpace(cfg.BotToken)
	if token == "" {
		return nil, ErrMissingBotToken
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if baseURL == "" {
		baseURL = defaultTelegramAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramGateway{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
		log:     logger.Component("telegram.gateway"),
	}, nil
}

func (g *TelegramGateway) SendMessage(ctx context.Context, chatID, text string) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrMissingChatID
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", g.baseURL, url.PathEscape(g.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out apiResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.OK {
		g.log.Warn("sendMessage rejected",
			zap.String("chat_id", chatID),
			zap.Int("http_status", resp.StatusCode),
			zap.String("description", out.Description),
		)
		if out.Description != "" {
			return fmt.Errorf("telegram http %d: %s", resp.StatusCode, out.Description)
		}
		return fmt.Errorf("telegram http %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("telegram response: %w", decodeErr)
	}
	g.log.Debug("message sent", zap.String("chat_id", chatID))
	return nil
}
