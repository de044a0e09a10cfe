package charge_no_show

import (
	"context"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ChargeNoShow(ctx context.Context, id int64, feeCents int64) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// PaymentsClient интерфейс клиента платежного провайдера
type PaymentsClient interface {
	ChargeStoredCard(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error)
}

// Notifier интерфейс публикации уведомлений
type Notifier interface {
	Send(ctx context.Context, kind, recipient string, payload map[string]interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
