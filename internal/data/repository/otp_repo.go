package repository

import (
	"context"
	"fmt"

	"telegram-auth/internal/data/entity"
	"telegram-auth/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Replace(ctx context.Context, otp *entity.OTPCode) error {
	// delete-then-insert keeps only the latest code per identity
	delQuery := `DELETE FROM otp_codes WHERE telegram_id = $1`
	if _, err := r.db.Exec(ctx, delQuery, otp.TelegramID); err != nil {
		r.log.Error("Failed to clear previous OTP",
			zap.Error(err),
			zap.String("telegram_id", otp.TelegramID),
		)
		return fmt.Errorf("clear previous OTP for %s: %w", otp.TelegramID, err)
	}

	insQuery := `
		INSERT INTO otp_codes (id, telegram_id, code, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, insQuery,
		otp.ID,
		otp.TelegramID,
		otp.Code,
		otp.ExpiresAt,
	)
	if err != nil {
		r.log.Error("Failed to store OTP",
			zap.Error(err),
			zap.String("telegram_id", otp.TelegramID),
		)
		return fmt.Errorf("store OTP for %s: %w", otp.TelegramID, err)
	}

	return nil
}

func (r *otpRepository) Find(ctx context.Context, telegramID, code string) (*entity.OTPCode, error) {
	query := `
		SELECT id, telegram_id, code, expires_at
		FROM otp_codes
		WHERE telegram_id = $1 AND code = $2
	`

	var otp entity.OTPCode
	err := r.db.QueryRow(ctx, query, telegramID, code).Scan(
		&otp.ID,
		&otp.TelegramID,
		&otp.Code,
		&otp.ExpiresAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("telegram_id", telegramID),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", telegramID, err)
	}

	return &otp, nil
}

func (r *otpRepository) Delete(ctx context.Context, otp *entity.OTPCode) error {
	query := `DELETE FROM otp_codes WHERE id = $1`

	_, err := r.db.Exec(ctx, query, otp.ID)
	if err != nil {
		r.log.Error("Failed to delete OTP",
			zap.Error(err),
			zap.String("otp_id", otp.ID.String()),
		)
		return fmt.Errorf("delete OTP %s: %w", otp.ID.String(), err)
	}

	return nil
}
