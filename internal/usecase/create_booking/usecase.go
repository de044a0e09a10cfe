package create_booking

import (
	"context"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/availability"
	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/feepolicy"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
	"github.com/quesarica/QR-BookingService/internal/pricing"
	"github.com/quesarica/QR-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	payments     PaymentsClient
	successURL   string
	cancelURL    string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	paymentsClient PaymentsClient,
	successURL, cancelURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		payments:     paymentsClient,
		successURL:   successURL,
		cancelURL:    cancelURL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Цена всегда пересчитывается на сервере, значения клиента игнорируются.
// Бронирование создается в статусе pending и подтверждается вебхуком
// после завершения платежной сессии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, guests=%d, duration=%s, method=%s",
		req.EventDate.Format(domain.DateFormat), req.GuestCount, req.Duration, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	eventDate := availability.DateOnly(req.EventDate)

	// 3. Получаем настройки политик
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Проверяем минимальный срок уведомления
	if availability.DaysUntil(eventDate, now) < settings.MinNoticeDays {
		uc.logger.Warn("CreateBooking: date %s violates %d-day notice",
			eventDate.Format(domain.DateFormat), settings.MinNoticeDays)
		return nil, ErrInsufficientNotice
	}

	// 5. Проверяем дневной лимит мероприятий
	counts, err := uc.bookingRepo.CountActiveByDate(ctx, eventDate, eventDate)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}
	if counts[eventDate.Format(domain.DateFormat)] >= settings.MaxEventsPerDay {
		uc.logger.Warn("CreateBooking: date %s is fully booked", eventDate.Format(domain.DateFormat))
		return nil, ErrDateFullyBooked
	}

	// 6. Считаем итоговую цену
	duration := domain.ServiceDuration(req.Duration)
	total, err := pricing.Total(duration, req.GuestCount, req.Extras)
	if err != nil {
		uc.logger.Warn("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTier, err)
	}

	reference := domain.NewReference(eventDate)
	method := domain.PaymentMethod(req.PaymentMethod)

	booking := &domain.Booking{
		Reference:       reference,
		EventDate:       eventDate,
		EventTime:       req.EventTime,
		EventAddress:    req.EventAddress,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		GuestCount:      req.GuestCount,
		Duration:        duration,
		Meats:           req.Meats,
		Extras:          req.Extras,
		ExtraFlavors:    req.ExtraFlavors,
		TotalPriceCents: total,
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentUnpaid,
		Status:          domain.StatusPending,
	}

	resp := &Response{
		Reference:       reference,
		TotalPriceCents: total,
		Status:          string(domain.StatusPending),
	}

	// 7. Создаем платежную сессию у провайдера
	description := fmt.Sprintf("Catering %s, %d guests (%s)",
		eventDate.Format(domain.DateFormat), req.GuestCount, reference)

	switch method {
	case domain.PaymentCard:
		// Картой списывается вся сумма с наценкой и комиссией провайдера
		charge := feepolicy.ComputeCardCharge(total,
			settings.CCSurchargePercent, settings.StripeFeePercent, settings.StripeFeeFlatCents)

		session, err := uc.payments.CreateCheckoutSession(ctx, payments.CheckoutParams{
			AmountCents:   charge.ChargeAmountCents,
			Description:   description,
			CustomerEmail: req.CustomerEmail,
			SuccessURL:    uc.successURL,
			CancelURL:     uc.cancelURL,
			Reference:     reference,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create checkout session: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}

		booking.StripeSessionID = ptr.Ptr(session.ID)
		resp.CardChargeCents = ptr.Ptr(charge.ChargeAmountCents)
		resp.CheckoutURL = session.URL

	case domain.PaymentCash:
		// Наличная оплата: карта сохраняется без списания, депозит справочный
		terms := feepolicy.ComputeCashTerms(total, settings.CashDepositPercent)

		session, err := uc.payments.CreateSetupSession(ctx, payments.SetupParams{
			CustomerEmail: req.CustomerEmail,
			SuccessURL:    uc.successURL,
			CancelURL:     uc.cancelURL,
			Reference:     reference,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create setup session: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}

		booking.StripeSessionID = ptr.Ptr(session.ID)
		booking.DepositCents = terms.DepositCents
		booking.BalanceDueCents = terms.BalanceDueCents
		resp.DepositCents = ptr.Ptr(terms.DepositCents)
		resp.BalanceDueCents = ptr.Ptr(terms.BalanceDueCents)
		resp.CheckoutURL = session.URL
	}

	// 8. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	resp.ID = created.ID

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", created.ID, reference)
	return resp, nil
}
