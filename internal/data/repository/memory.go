package repository

import (
	"context"
	"fmt"
	"sync"

	"telegram-auth/internal/data/entity"
)

// NewMemoryRepository returns a Repository backed by in-process maps.
// It implements the same interfaces as the Postgres backend, including
// the unique display-name guarantee, so handlers and services run
// unchanged against it. Used in tests and for running without a database.
func NewMemoryRepository() *Repository {
	return &Repository{
		User: &memoryUserRepository{users: make(map[string]*entity.User)},
		OTP:  &memoryOTPRepository{codes: make(map[string]*entity.OTPCode)},
	}
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User // keyed by user ID
}

func (m *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Name == user.Name {
			return ErrNameConflict
		}
	}

	cp := *user
	m.users[user.ID.String()] = &cp
	return nil
}

func (m *memoryUserRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.TelegramID == telegramID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepository) UpdateByTelegramID(ctx context.Context, telegramID, name, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var target *entity.User
	for _, u := range m.users {
		if u.TelegramID == telegramID {
			target = u
			break
		}
	}
	if target == nil {
		return fmt.Errorf("user with telegram ID %s not found", telegramID)
	}

	for _, u := range m.users {
		if u.Name == name && u.TelegramID != telegramID {
			return ErrNameConflict
		}
	}

	target.Name = name
	target.PasswordHash = passwordHash
	return nil
}

type memoryOTPRepository struct {
	mu    sync.RWMutex
	codes map[string]*entity.OTPCode // keyed by telegram ID
}

func (m *memoryOTPRepository) Replace(ctx context.Context, otp *entity.OTPCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *otp
	m.codes[otp.TelegramID] = &cp
	return nil
}

func (m *memoryOTPRepository) Find(ctx context.Context, telegramID, code string) (*entity.OTPCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.codes[telegramID]
	if !ok || c.Code != code {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memoryOTPRepository) Delete(ctx context.Context, otp *entity.OTPCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.codes[otp.TelegramID]
	if ok && c.ID == otp.ID {
		delete(m.codes, otp.TelegramID)
	}
	return nil
}
