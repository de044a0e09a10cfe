package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	"github.com/quesarica/QR-BookingService/pkg/token"
)

// UseCase use case подтверждения оплаты по вебхуку провайдера
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	payments     PaymentsClient
	notifier     Notifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	paymentsClient PaymentsClient,
	notif Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		payments:     paymentsClient,
		notifier:     notif,
		logger:       logger,
	}
}

// Execute подтверждает бронирование после завершения платежной сессии.
// Идемпотентен: повторная доставка события для уже подтвержденного
// бронирования ничего не меняет. Провайдер ретраит вебхуки, поэтому
// это штатная ситуация, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: session=%s mode=%s", req.SessionID, req.Mode)

	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	// 2. Находим бронирование по платежной сессии
	booking, err := uc.bookingRepo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: no booking for session=%s", req.SessionID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: repository error for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Повторное событие: бронирование уже обработано
	if booking.Status != domain.StatusPending {
		uc.logger.Info("ConfirmPayment: booking id=%d already %s, skipping", booking.ID, booking.Status)
		return &Response{BookingID: booking.ID, Status: string(booking.Status), Confirmed: false}, nil
	}

	// 4. Выпускаем self-service токены
	cancelToken, err := token.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate cancel token: %v", ErrInternal, err)
	}
	rescheduleToken, err := token.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate reschedule token: %v", ErrInternal, err)
	}

	// 5. Определяем состояние оплаты и ссылки провайдера
	paymentStatus := domain.PaymentPaid
	var customerID, paymentMethodID, paymentIntentID *string

	switch req.Mode {
	case "payment":
		paymentIntentID = req.PaymentIntentID
	case "setup":
		// Карта сохранена без списания: узнаем customer и payment method
		if req.SetupIntentID == nil || *req.SetupIntentID == "" {
			return nil, fmt.Errorf("%w: setupIntentID is required for setup mode", ErrInvalidInput)
		}
		intent, err := uc.payments.GetSetupIntent(ctx, *req.SetupIntentID)
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to get setup intent %s: %v", *req.SetupIntentID, err)
			return nil, fmt.Errorf("%w: failed to get setup intent: %v", ErrInternal, err)
		}
		paymentStatus = domain.PaymentCardOnFile
		customerID = &intent.Customer
		paymentMethodID = &intent.PaymentMethod
	default:
		return nil, fmt.Errorf("%w: unknown session mode %q", ErrInvalidInput, req.Mode)
	}

	// 6. Подтверждаем бронирование
	err = uc.bookingRepo.ConfirmPayment(ctx, booking.ID, paymentStatus,
		cancelToken, rescheduleToken, customerID, paymentMethodID, paymentIntentID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to confirm booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
	}

	// 7. Уведомляем клиента и владельца
	payload := map[string]interface{}{
		"reference":        booking.Reference,
		"event_date":       booking.EventDate.Format(domain.DateFormat),
		"guest_count":      booking.GuestCount,
		"total_cents":      booking.TotalPriceCents,
		"payment_status":   string(paymentStatus),
		"cancel_token":     cancelToken,
		"reschedule_token": rescheduleToken,
	}
	uc.notifier.Send(ctx, notifier.KindBookingConfirmed, booking.CustomerEmail, payload)

	if settings, err := uc.settingsRepo.Get(ctx); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to get settings for owner notification: %v", err)
	} else if settings.NotifyEmail != "" {
		uc.notifier.Send(ctx, notifier.KindOwnerNewBooking, settings.NotifyEmail, payload)
	}

	uc.logger.Info("ConfirmPayment: confirmed booking id=%d status=%s", booking.ID, paymentStatus)
	return &Response{
		BookingID: booking.ID,
		Status:    string(domain.StatusConfirmed),
		Confirmed: true,
	}, nil
}
