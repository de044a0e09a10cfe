package cancel_booking

import (
	"context"
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, feeCents, refundCents int64) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// PaymentsClient интерфейс клиента платежного провайдера
type PaymentsClient interface {
	Refund(ctx context.Context, paymentIntentID string, amountCents int64) (*payments.Refund, error)
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
