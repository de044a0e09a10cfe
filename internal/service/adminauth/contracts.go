package adminauth

import (
	"context"
	"time"
)

// SessionRepository интерфейс хранилища административных сессий
type SessionRepository interface {
	Create(ctx context.Context, token string, expiresAt time.Time) error
	GetValid(ctx context.Context, token string) (time.Time, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
