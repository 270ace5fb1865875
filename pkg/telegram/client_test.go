package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"telegram-auth/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendMessage_PostsHTMLPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(utils.TelegramConfig{BotToken: "TOKEN", APIURL: srv.URL}, zap.NewNop())

	err := client.SendMessage(context.Background(), "12345", "Sizning tasdiqlash kodingiz: <b>123456</b>")
	require.NoError(t, err)

	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Equal(t, "HTML", gotBody["parse_mode"])
	assert.Contains(t, gotBody["text"], "<b>123456</b>")
}

func TestSendMessage_MissingToken(t *testing.T) {
	client := NewClient(utils.TelegramConfig{APIURL: "https://api.telegram.org"}, zap.NewNop())

	err := client.SendMessage(context.Background(), "12345", "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	client := NewClient(utils.TelegramConfig{BotToken: "BAD", APIURL: srv.URL}, zap.NewNop())

	err := client.SendMessage(context.Background(), "12345", "hi")
	assert.Error(t, err)
}
