package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is a one-time verification code issued for a Telegram chat.
// At most one active code exists per TelegramID; issuing a new one
// replaces the previous entry.
type OTPCode struct {
	ID         uuid.UUID `db:"id"`
	TelegramID string    `db:"telegram_id"`
	Code       string    `db:"code"`
	ExpiresAt  time.Time `db:"expires_at"`
}
