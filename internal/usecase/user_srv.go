package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telegram-auth/internal/data/entity"
	"telegram-auth/internal/data/repository"
	"telegram-auth/internal/dto/response"
	"telegram-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	// CheckName reports whether the display name is still free.
	CheckName(ctx context.Context, name string) (bool, error)
	SetProfile(ctx context.Context, telegramID, name, password string) (*response.User, error)
	Login(ctx context.Context, name, password string) (*response.User, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) CheckName(ctx context.Context, name string) (bool, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user == nil, nil
}

// SetProfile creates a credential record for the chat, or overwrites
// name and password when one already exists for that telegram ID.
func (s *userService) SetProfile(ctx context.Context, telegramID, name, password string) (*response.User, error) {
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	// Friendly pre-check; the unique constraint on users.name is what
	// actually guarantees uniqueness when two requests race.
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if existing != nil && existing.TelegramID != telegramID {
		return nil, ErrNameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	current, err := s.repo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if current != nil {
		if err := s.repo.UpdateByTelegramID(ctx, telegramID, name, hashed); err != nil {
			if errors.Is(err, repository.ErrNameConflict) {
				return nil, ErrNameTaken
			}
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	} else {
		current = &entity.User{
			ID:           uuid.New(),
			TelegramID:   telegramID,
			Name:         name,
			PasswordHash: hashed,
			CreatedAt:    time.Now(),
		}
		if err := s.repo.Create(ctx, current); err != nil {
			if errors.Is(err, repository.ErrNameConflict) {
				return nil, ErrNameTaken
			}
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
	}

	user, err := s.repo.FindByTelegramID(ctx, telegramID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: reload profile: %v", ErrStorage, err)
	}

	s.log.Info("Profile saved",
		zap.String("telegram_id", telegramID),
		zap.String("name", name),
	)

	return safeUser(user), nil
}

func (s *userService) Login(ctx context.Context, name, password string) (*response.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("name", name))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("name", name))
	return safeUser(user), nil
}

// safeUser strips the password hash from the stored record
func safeUser(user *entity.User) *response.User {
	return &response.User{
		ID:         user.ID.String(),
		TelegramID: user.TelegramID,
		Name:       user.Name,
		CreatedAt:  user.CreatedAt,
	}
}
