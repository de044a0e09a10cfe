package confirm_payment

import (
	"context"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	ConfirmPayment(
		ctx context.Context,
		id int64,
		paymentStatus domain.PaymentStatus,
		cancelToken, rescheduleToken string,
		stripeCustomerID, stripePaymentMethodID, stripePaymentIntentID *string,
	) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// PaymentsClient интерфейс клиента платежного провайдера
type PaymentsClient interface {
	GetSetupIntent(ctx context.Context, setupIntentID string) (*payments.SetupIntent, error)
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
