package adaptor

import (
	"telegram-auth/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	OTP  *OTPHandler
	User *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		OTP:  NewOTPHandler(service.OTP, log),
		User: NewUserHandler(service.User, log),
	}
}
