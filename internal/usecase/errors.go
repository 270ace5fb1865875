package usecase

import "errors"

// Business error taxonomy. Handlers translate these with errors.Is into
// the HTTP status and user-facing message each endpoint promises.
var (
	ErrPasswordTooShort   = errors.New("password shorter than 8 characters")
	ErrNameTaken          = errors.New("display name already taken")
	ErrInvalidCode        = errors.New("code invalid or not issued")
	ErrExpiredCode        = errors.New("code expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDelivery           = errors.New("message delivery failed")
	ErrStorage            = errors.New("storage failure")
)
