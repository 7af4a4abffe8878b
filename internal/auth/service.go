package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/tasktracker/internal/crypto"
	"github.com/iudanet/tasktracker/internal/models"
	"github.com/iudanet/tasktracker/internal/storage"
	"github.com/iudanet/tasktracker/internal/validation"
)

// Service предоставляет локальную авторизацию: вход, регистрацию и выход.
// Неизвестный username при входе приводит к регистрации нового аккаунта.
type Service struct {
	users    storage.UserStorage
	sessions storage.SessionStorage
	logger   *slog.Logger
	now      func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(users storage.UserStorage, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates an existing account or registers a new one when the
// username is unknown. The returned error is reserved for storage faults.
func (s *Service) Login(ctx context.Context, username, password string) (Result, error) {
	if err := validation.ValidateCredentialsPresent(username, password); err != nil {
		return validationFailure(err), nil
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Info("Unknown username on login, registering", "username", username)
			return s.Register(ctx, username, password)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		s.logger.Warn("Login rejected", "username", username)
		return invalidPasswordFailure(err), nil
	}

	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "username", user.Username, "user_id", user.ID)

	return Success{UserID: user.ID, Username: user.Username}, nil
}

// Register creates a new account and logs it in
func (s *Service) Register(ctx context.Context, username, password string) (Result, error) {
	if err := validation.ValidateRegistration(username, password); err != nil {
		return validationFailure(err), nil
	}

	// Проверяем существование пользователя
	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return conflictFailure(storage.ErrUserAlreadyExists), nil
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}

	// UNIQUE на username закрывает гонку между проверкой и вставкой
	user.ID, err = s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return conflictFailure(err), nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "username", user.Username, "user_id", user.ID)

	return Success{UserID: user.ID, Username: user.Username}, nil
}

// Logout clears the session. Logging out without a session is not an error
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("User logged out")

	return nil
}

// CurrentSession returns the logged-in identity or ErrNotLoggedIn
func (s *Service) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// IsLoggedIn reports whether a session exists
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	_, err := s.CurrentSession(ctx)
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) startSession(ctx context.Context, user *models.User) error {
	session := &models.Session{UserID: user.ID, Username: user.Username}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
