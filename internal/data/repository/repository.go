package repository

import (
	"context"
	"errors"

	"telegram-auth/internal/data/entity"
	"telegram-auth/pkg/database"

	"go.uber.org/zap"
)

// ErrNameConflict is returned by Create/UpdateByTelegramID when the
// display name is already held by another user. Postgres raises it from
// the unique constraint, so it holds even when two writers race past the
// read-then-write pre-check.
var ErrNameConflict = errors.New("display name already taken")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByName(ctx context.Context, name string) (*entity.User, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error)
	UpdateByTelegramID(ctx context.Context, telegramID, name, passwordHash string) error
}

type OTPRepository interface {
	// Replace deletes any previous code for the telegram ID and stores
	// the new one, keeping at most one active entry per identity.
	Replace(ctx context.Context, otp *entity.OTPCode) error
	Find(ctx context.Context, telegramID, code string) (*entity.OTPCode, error)
	Delete(ctx context.Context, otp *entity.OTPCode) error
}

type Repository struct {
	User UserRepository
	OTP  OTPRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		OTP:  NewOTPRepository(db, log),
	}
}
