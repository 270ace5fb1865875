package usecase

import (
	"context"
	"fmt"
	"time"

	"telegram-auth/internal/data/entity"
	"telegram-auth/internal/data/repository"
	"telegram-auth/pkg/telegram"
	"telegram-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OTPService interface {
	SendCode(ctx context.Context, telegramID string) error
	VerifyCode(ctx context.Context, telegramID, code string) error
}

type otpService struct {
	repo   repository.OTPRepository
	sender telegram.Sender
	expiry time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewOTPService(
	repo repository.OTPRepository,
	sender telegram.Sender,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	return &otpService{
		repo:   repo,
		sender: sender,
		expiry: time.Duration(config.OTP.ExpiryMinutes) * time.Minute,
		log:    log,
		now:    time.Now,
	}
}

// SendCode generates a fresh code, replaces any previous one for the
// chat, and delivers it. A delivery failure leaves the stored code in
// place: the user may retry /send-code, which supersedes it anyway.
func (s *otpService) SendCode(ctx context.Context, telegramID string) error {
	code := utils.GenerateCode()

	otp := &entity.OTPCode{
		ID:         uuid.New(),
		TelegramID: telegramID,
		Code:       code,
		ExpiresAt:  s.now().Add(s.expiry),
	}

	if err := s.repo.Replace(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("telegram_id", telegramID))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	text := fmt.Sprintf("Sizning tasdiqlash kodingiz: <b>%s</b>\nBu kod 5 daqiqa ichida amal qiladi.", code)
	if err := s.sender.SendMessage(ctx, telegramID, text); err != nil {
		s.log.Error("Failed to deliver OTP", zap.Error(err), zap.String("telegram_id", telegramID))
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.log.Info("OTP sent",
		zap.String("telegram_id", telegramID),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	return nil
}

// VerifyCode checks the candidate code. A matching entry is always
// removed, whether the attempt succeeds or the code turned out expired,
// so every code works at most once.
func (s *otpService) VerifyCode(ctx context.Context, telegramID, code string) error {
	otp, err := s.repo.Find(ctx, telegramID, code)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("telegram_id", telegramID))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if otp == nil {
		return ErrInvalidCode
	}

	if s.now().After(otp.ExpiresAt) {
		if err := s.repo.Delete(ctx, otp); err != nil {
			s.log.Warn("Failed to delete expired OTP", zap.Error(err), zap.String("telegram_id", telegramID))
		}
		return ErrExpiredCode
	}

	if err := s.repo.Delete(ctx, otp); err != nil {
		s.log.Error("Failed to consume OTP", zap.Error(err), zap.String("telegram_id", telegramID))
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.log.Info("OTP verified", zap.String("telegram_id", telegramID))
	return nil
}
