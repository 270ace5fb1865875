package repository

import (
	"context"
	"errors"
	"fmt"

	"telegram-auth/internal/data/entity"
	"telegram-auth/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, telegram_id, name, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.TelegramID,
		user.Name,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameConflict
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("telegram_id", user.TelegramID),
			zap.String("name", user.Name),
		)
		return fmt.Errorf("create user %s: %w", user.Name, err)
	}

	return nil
}

func (ur *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	query := `
		SELECT id, telegram_id, name, password, created_at
		FROM users
		WHERE name = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, name).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find user by name %s: %w", name, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	query := `
		SELECT id, telegram_id, name, password, created_at
		FROM users
		WHERE telegram_id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by telegram ID",
			zap.Error(err),
			zap.String("telegram_id", telegramID),
		)
		return nil, fmt.Errorf("find user by telegram ID %s: %w", telegramID, err)
	}

	return &user, nil
}

// UpdateByTelegramID overwrites name and password hash for an existing
// profile; id and created_at stay untouched.
func (ur *userRepository) UpdateByTelegramID(ctx context.Context, telegramID, name, passwordHash string) error {
	query := `
		UPDATE users
		SET name = $2, password = $3
		WHERE telegram_id = $1
	`

	result, err := ur.db.Exec(ctx, query, telegramID, name, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrNameConflict
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("telegram_id", telegramID),
			zap.String("name", name),
		)
		return fmt.Errorf("update user %s: %w", telegramID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user with telegram ID %s not found", telegramID)
	}

	return nil
}

// isUniqueViolation reports whether err is the unique_violation SQLSTATE
// raised by the users.name constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
