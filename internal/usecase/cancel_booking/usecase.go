package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/feepolicy"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
)

// UseCase use case отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	payments     PaymentsClient
	notifier     Notifier
	timeProvider TimeProvider
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отменяет бронирование и возвращает средства за вычетом сбора.
// Сбор определяется ступенчатой политикой: при отмене не позднее чем за
// FreeCancellationDays дней сбор нулевой, иначе flat или percent от
// итоговой цены. Возврат никогда не уходит в минус.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим бронирование
	booking, err := uc.getBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: cancelling booking id=%d reference=%s byOwner=%t",
		booking.ID, booking.Reference, req.ByOwner)

	// 3. Отмена терминальна, повторная отмена запрещена
	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", booking.ID)
		return nil, ErrAlreadyCancelled
	}

	// 4. Считаем сбор и возврат
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	quote := feepolicy.CancellationFee(booking.TotalPriceCents, settings, booking.EventDate, now)

	// 5. Возвращаем средства, если было списание.
	// Возврат выполняется до записи отмены: если провайдер отказал,
	// бронирование остается активным и операцию можно повторить.
	refunded := int64(0)
	if booking.IsPaid() && booking.StripePaymentIntentID != nil && quote.RefundCents > 0 {
		refund, err := uc.payments.Refund(ctx, *booking.StripePaymentIntentID, quote.RefundCents)
		if err != nil {
			uc.logger.Error("CancelBooking: refund failed for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
		}
		refunded = refund.Amount
		uc.logger.Info("CancelBooking: refunded %d cents for booking id=%d", refunded, booking.ID)
	}

	// 6. Записываем отмену: статус, сбор, возврат, очистка токенов
	if err := uc.bookingRepo.Cancel(ctx, booking.ID, quote.FeeCents, refunded); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to persist cancellation for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to persist cancellation: %v", ErrInternal, err)
	}

	// 7. Уведомляем клиента и владельца
	payload := map[string]interface{}{
		"reference":    booking.Reference,
		"event_date":   booking.EventDate.Format(domain.DateFormat),
		"fee_cents":    quote.FeeCents,
		"refund_cents": refunded,
	}
	uc.notifier.Send(ctx, notifier.KindBookingCancelled, booking.CustomerEmail, payload)
	if settings.NotifyEmail != "" {
		uc.notifier.Send(ctx, notifier.KindOwnerCancelled, settings.NotifyEmail, payload)
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%d fee=%d refund=%d",
		booking.ID, quote.FeeCents, refunded)

	return &Response{
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		FeeCents:    quote.FeeCents,
		RefundCents: refunded,
		Free:        quote.Free,
		DaysUntil:   quote.DaysUntil,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ByOwner {
		if req.BookingID <= 0 {
			return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
		}
		return nil
	}
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) getBooking(ctx context.Context, req *Request) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)

	if req.ByOwner {
		booking, err = uc.bookingRepo.GetByID(ctx, req.BookingID)
	} else {
		booking, err = uc.bookingRepo.GetByCancelToken(ctx, req.Token)
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking not found")
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return booking, nil
}
