package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/availability"
	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
	"github.com/quesarica/QR-BookingService/pkg/token"
)

// UseCase use case переноса бронирования на новую дату
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notif Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notif,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование на новую дату.
// Новая дата проходит те же проверки, что и при создании. Оба токена
// ротируются, старые ссылки из писем перестают работать. Флаг
// напоминания сбрасывается, чтобы напоминание ушло и для новой даты.
// Использует сериализуемую транзакцию для предотвращения гонки данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.NewDate.IsZero() {
		return nil, fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	newDate := availability.DateOnly(req.NewDate)

	// 2. Находим бронирование по reschedule-токену
	booking, err := uc.bookingRepo.GetByRescheduleToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking not found")
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: repository error: %v", err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleBooking: booking id=%d, %s -> %s",
		booking.ID, booking.EventDate.Format(domain.DateFormat), newDate.Format(domain.DateFormat))

	// 3. Отмененные бронирования не переносятся
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}

	// 4. Выпускаем новые токены
	newCancelToken, err := token.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate cancel token: %v", ErrInternal, err)
	}
	newRescheduleToken, err := token.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generate reschedule token: %v", ErrInternal, err)
	}

	// 5. Проверяем новую дату и переносим в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 5.1. Минимальный срок уведомления действует и для переноса
		if availability.DaysUntil(newDate, now) < settings.MinNoticeDays {
			uc.logger.Warn("RescheduleBooking: new date %s violates %d-day notice",
				newDate.Format(domain.DateFormat), settings.MinNoticeDays)
			return ErrInsufficientNotice
		}

		// 5.2. Дневной лимит. Собственное бронирование не считается
		// занятым местом при переносе в пределах той же даты.
		counts, err := uc.bookingRepo.CountActiveByDate(txCtx, newDate, newDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		count := counts[newDate.Format(domain.DateFormat)]
		if availability.DateOnly(booking.EventDate).Equal(newDate) {
			count--
		}
		if count >= settings.MaxEventsPerDay {
			uc.logger.Warn("RescheduleBooking: new date %s is fully booked", newDate.Format(domain.DateFormat))
			return ErrDateFullyBooked
		}

		// 5.3. Переносим и ротируем токены
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, newDate, newCancelToken, newRescheduleToken); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Уведомляем клиента и владельца
	payload := map[string]interface{}{
		"reference": booking.Reference,
		"old_date":  booking.EventDate.Format(domain.DateFormat),
		"new_date":  newDate.Format(domain.DateFormat),
	}
	uc.notifier.Send(ctx, notifier.KindBookingRescheduled, booking.CustomerEmail, payload)
	if settings, err := uc.settingsRepo.Get(ctx); err == nil && settings.NotifyEmail != "" {
		uc.notifier.Send(ctx, notifier.KindOwnerRescheduled, settings.NotifyEmail, payload)
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s",
		booking.ID, newDate.Format(domain.DateFormat))

	return &Response{
		BookingID:       booking.ID,
		Reference:       booking.Reference,
		NewDate:         newDate,
		CancelToken:     newCancelToken,
		RescheduleToken: newRescheduleToken,
	}, nil
}
