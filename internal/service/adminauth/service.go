package adminauth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	sessionRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/adminsession"
	"github.com/quesarica/QR-BookingService/pkg/token"
)

// Service аутентификация владельца. Единственный аккаунт с паролем из
// конфигурации, сессии хранятся в БД с ограниченным временем жизни.
type Service struct {
	sessionRepo SessionRepository
	password    string
	sessionTTL  time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(sessionRepo SessionRepository, password string, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		password:    password,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login проверяет пароль и создает новую сессию.
// Возвращает токен сессии и время его истечения.
func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.Warn("Login: invalid password attempt")
		return "", time.Time{}, ErrInvalidCredentials
	}

	sessionToken, err := token.Generate()
	if err != nil {
		s.logger.Error("Login: failed to generate session token: %v", err)
		return "", time.Time{}, fmt.Errorf("%w: Login - generate token: %v", ErrInternal, err)
	}

	expiresAt := time.Now().UTC().Add(s.sessionTTL)
	if err := s.sessionRepo.Create(ctx, sessionToken, expiresAt); err != nil {
		s.logger.Error("Login: failed to store session: %v", err)
		return "", time.Time{}, fmt.Errorf("%w: Login - store session: %v", ErrInternal, err)
	}

	// Попутно подчищаем истекшие сессии
	if deleted, err := s.sessionRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn("Login: failed to delete expired sessions: %v", err)
	} else if deleted > 0 {
		s.logger.Info("Login: deleted %d expired sessions", deleted)
	}

	s.logger.Info("Login: session created, expires at %s", expiresAt.Format(time.RFC3339))
	return sessionToken, expiresAt, nil
}

// Validate проверяет действительность токена сессии
func (s *Service) Validate(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return ErrInvalidToken
	}

	_, err := s.sessionRepo.GetValid(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrInvalidToken
		}
		s.logger.Error("Validate: repository error: %v", err)
		return fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Logout отзывает сессию. Отзыв несуществующей сессии не ошибка.
func (s *Service) Logout(ctx context.Context, sessionToken string) error {
	if err := s.sessionRepo.Delete(ctx, sessionToken); err != nil {
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session revoked")
	return nil
}
