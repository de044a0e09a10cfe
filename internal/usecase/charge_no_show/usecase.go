package charge_no_show

import (
	"context"
	"errors"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/feepolicy"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
)

// UseCase use case списания штрафа за неявку
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

// Execute списывает штраф за неявку с сохраненной карты.
// Применимо только к наличным бронированиям: карточные оплачены
// полностью при создании. Штраф списывается не более одного раза.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	uc.logger.Info("ChargeNoShow: booking id=%d", req.BookingID)

	// 2. Находим бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ChargeNoShow: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ChargeNoShow: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем применимость штрафа
	if booking.PaymentMethod != domain.PaymentCash {
		uc.logger.Warn("ChargeNoShow: booking id=%d is a card booking", booking.ID)
		return nil, ErrNotCashBooking
	}
	if booking.NoShowCharged() {
		uc.logger.Warn("ChargeNoShow: booking id=%d already charged", booking.ID)
		return nil, ErrAlreadyCharged
	}
	if !booking.HasStoredPaymentMethod() {
		uc.logger.Warn("ChargeNoShow: booking id=%d has no card on file", booking.ID)
		return nil, ErrNoCardOnFile
	}

	// 4. Считаем штраф
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("ChargeNoShow: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	fee := feepolicy.NoShowFee(booking.TotalPriceCents, settings)

	// 5. Списываем с сохраненной карты
	description := fmt.Sprintf("No-show fee for booking %s", booking.Reference)
	intent, err := uc.payments.ChargeStoredCard(ctx,
		*booking.StripeCustomerID, *booking.StripePaymentMethodID, fee, description)
	if err != nil {
		if errors.Is(err, payments.ErrCardDeclined) {
			uc.logger.Warn("ChargeNoShow: card declined for booking id=%d", booking.ID)
			return nil, ErrCardDeclined
		}
		uc.logger.Error("ChargeNoShow: charge failed for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: charge failed: %v", ErrInternal, err)
	}

	// 6. Записываем штраф, бронирование закрывается как отмененное
	if err := uc.bookingRepo.ChargeNoShow(ctx, booking.ID, fee); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		// Списание прошло, но запись не удалась. Логируем для ручной
		// сверки: повторный вызов упрется в ErrAlreadyCharged только
		// после успешной записи.
		uc.logger.Error("ChargeNoShow: charge succeeded but persist failed for booking id=%d intent=%s: %v",
			booking.ID, intent.ID, err)
		return nil, fmt.Errorf("%w: failed to persist charge: %v", ErrInternal, err)
	}

	// 7. Уведомляем клиента и владельца
	payload := map[string]interface{}{
		"reference": booking.Reference,
		"fee_cents": fee,
	}
	uc.notifier.Send(ctx, notifier.KindNoShowCharged, booking.CustomerEmail, payload)
	if settings.NotifyEmail != "" {
		uc.notifier.Send(ctx, notifier.KindOwnerNoShowCharged, settings.NotifyEmail, payload)
	}

	uc.logger.Info("ChargeNoShow: charged %d cents for booking id=%d intent=%s", fee, booking.ID, intent.ID)

	return &Response{
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		FeeCents:        fee,
		PaymentIntentID: intent.ID,
	}, nil
}
