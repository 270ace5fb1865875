package response

import "time"

// User is the safe projection of a credential record: the password
// hash is never part of it. Field names are fixed for wire compatibility.
type User struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendCodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyCodeResponse struct {
	Success bool `json:"success"`
}

type CheckNameResponse struct {
	OK bool `json:"ok"`
}

type ProfileResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}
