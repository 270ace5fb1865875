package request

import "encoding/json"

// user_id arrives as a JSON number from the Telegram web app and as a
// string from other clients; json.Number accepts both.

type SendCodeRequest struct {
	UserID json.Number `json:"user_id" validate:"required"`
}

type VerifyCodeRequest struct {
	UserID json.Number `json:"user_id" validate:"required"`
	Code   string      `json:"code" validate:"required"`
}

type CheckNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type SetProfileRequest struct {
	UserID   json.Number `json:"user_id" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Password string      `json:"password" validate:"required"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}
