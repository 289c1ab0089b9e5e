package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buffet_festas/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTelegramGateway_RequiresToken(t *testing.T) {
	_, err := NewTelegramGateway(config.TelegramConfig{})
	assert.ErrorIs(t, err, ErrMissingBotToken)
}

func TestTelegramGateway_SendMessage(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer srv.Close()

	g, err := NewTelegramGateway(config.TelegramConfig{BotToken: "TOKEN", APIURL: srv.URL + "/", Timeout: time.Second})
	require.NoError(t, err)

	require.NoError(t, g.SendMessage(context.Background(), " 123 ", "Olá, Bia!"))
	assert.Equal(t, "123", got.ChatID)
	assert.Equal(t, "Olá, Bia!", got.Text)
}

func TestTelegramGateway_SendMessageErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	}))
	defer srv.Close()

	g, err := NewTelegramGateway(config.TelegramConfig{BotToken: "TOKEN", APIURL: srv.URL})
	require.NoError(t, err)

	err = g.SendMessage(context.Background(), "123", "oi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked by the user")

	assert.ErrorIs(t, g.SendMessage(context.Background(), " ", "oi"), ErrMissingChatID)
}
