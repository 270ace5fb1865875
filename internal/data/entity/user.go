package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential record keyed by a unique display name.
// TelegramID is the external chat identity used as the upsert key
// when a profile is re-set.
type User struct {
	ID           uuid.UUID `db:"id"`
	TelegramID   string    `db:"telegram_id"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}
