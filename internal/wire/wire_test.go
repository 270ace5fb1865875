package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"telegram-auth/internal/data/repository"
	"telegram-auth/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	texts []string
	err   error
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID, text string) error {
	f.texts = append(f.texts, text)
	return f.err
}

func newTestApp(t *testing.T, sender *fakeSender) *App {
	t.Helper()
	config := &utils.Config{
		OTP: utils.OTPConfig{ExpiryMinutes: 5, Length: 6},
	}
	return Wiring(repository.NewMemoryRepository(), sender, config, zap.NewNop())
}

func doJSON(t *testing.T, app *App, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec.Code, out
}

func errorField(t *testing.T, out map[string]json.RawMessage) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(out["error"], &msg))
	return msg
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Auth backend running!", rec.Body.String())
}

func TestSendCode_MissingUserID(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	code, out := doJSON(t, app, "/send-code", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "user_id required", errorField(t, out))
}

func TestSendCode_NumericUserID(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender)

	// Telegram web apps post the chat id as a JSON number
	code, out := doJSON(t, app, "/send-code", `{"user_id": 12345}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, `true`, string(out["success"]))
	assert.JSONEq(t, `"Kod yuborildi"`, string(out["message"]))
	require.Len(t, sender.texts, 1)
}

func TestSendCode_DeliveryFailure(t *testing.T) {
	app := newTestApp(t, &fakeSender{err: errors.New("boom")})

	code, out := doJSON(t, app, "/send-code", `{"user_id":"12345"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Kod yuborilmadi", errorField(t, out))
}

func TestVerifyCode_FullFlow(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender)

	status, _ := doJSON(t, app, "/send-code", `{"user_id":"12345"}`)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, sender.texts, 1)

	m := regexp.MustCompile(`<b>(\d{6})</b>`).FindStringSubmatch(sender.texts[0])
	require.Len(t, m, 2)
	otp := m[1]

	status, out := doJSON(t, app, "/verify-code", `{"user_id":"12345","code":"`+otp+`"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `true`, string(out["success"]))

	// one-time use: the consumed code no longer verifies
	status, out = doJSON(t, app, "/verify-code", `{"user_id":"12345","code":"`+otp+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Kod noto'g'ri yoki yo'q", errorField(t, out))
}

func TestVerifyCode_MissingFields(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, out := doJSON(t, app, "/verify-code", `{"user_id":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user_id va code kerak", errorField(t, out))
}

func TestCheckName_BeforeAndAfterProfile(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, out := doJSON(t, app, "/check-name", `{"name":"alice"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `true`, string(out["ok"]))

	status, _ = doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, status)

	status, out = doJSON(t, app, "/check-name", `{"name":"alice"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `false`, string(out["ok"]))
}

func TestCheckName_Missing(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, out := doJSON(t, app, "/check-name", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name required", errorField(t, out))
}

func TestSetProfile_ResponseOmitsPassword(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, out := doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, `true`, string(out["success"]))

	var user map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out["user"], &user))
	assert.Contains(t, user, "id")
	assert.Contains(t, user, "telegram_id")
	assert.Contains(t, user, "name")
	assert.Contains(t, user, "created_at")
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestSetProfile_Failures(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, out := doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user_id, name va password kerak", errorField(t, out))

	status, out = doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Parol kamida 8 belgidan iborat bo‘lishi kerak", errorField(t, out))

	status, _ = doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, status)

	// another identity cannot take the name
	status, out = doJSON(t, app, "/set-profile", `{"user_id":"67890","name":"alice","password":"password456"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bu ism band", errorField(t, out))
}

func TestLogin_WireShapes(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	status, _ := doJSON(t, app, "/set-profile", `{"user_id":"12345","name":"alice","password":"password123"}`)
	require.Equal(t, http.StatusOK, status)

	status, out := doJSON(t, app, "/login", `{"name":"alice","password":"password123"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `true`, string(out["success"]))

	var user map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out["user"], &user))
	assert.NotContains(t, user, "password")

	status, out = doJSON(t, app, "/login", `{"name":"alice","password":"wrongpassword"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Parol xato", errorField(t, out))

	status, out = doJSON(t, app, "/login", `{"name":"bob","password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Foydalanuvchi topilmadi", errorField(t, out))

	status, out = doJSON(t, app, "/login", `{"name":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name va password kerak", errorField(t, out))
}
