package reschedule_booking

import (
	"context"
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRescheduleToken(ctx context.Context, token string) (*domain.Booking, error)
	CountActiveByDate(ctx context.Context, from, to time.Time) (map[string]int, error)
	Reschedule(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс публикации уведомлений
type Notifier interface {
	Send(ctx context.Context, kind, recipient string, payload map[string]interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
