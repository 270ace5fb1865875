package usecase

import (
	"telegram-auth/internal/data/repository"
	"telegram-auth/pkg/telegram"
	"telegram-auth/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	OTP  OTPService
	User UserService
}

func NewService(repo *repository.Repository, sender telegram.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		OTP:  NewOTPService(repo.OTP, sender, config, log),
		User: NewUserService(repo.User, log),
	}
}
