package repository

import (
	"context"
	"fmt"

	"telegram-auth/pkg/database"
)

// schema statements are idempotent and safe to run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		telegram_id TEXT NOT NULL,
		name TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS otp_codes (
		id UUID PRIMARY KEY,
		telegram_id TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_otp_codes_telegram_id ON otp_codes (telegram_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_telegram_id ON users (telegram_id)`,
}

// EnsureSchema creates the users and otp_codes tables if they do not exist.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
