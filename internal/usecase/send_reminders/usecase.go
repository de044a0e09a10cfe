package send_reminders

import (
	"context"
	"fmt"

	"github.com/quesarica/QR-BookingService/internal/availability"
	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/integrations/notifier"
)

// UseCase use case рассылки напоминаний о предстоящих мероприятиях
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	notif Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		notifier:     notif,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассылает напоминания по оплаченным бронированиям, до которых
// осталось ровно ReminderDays дней. Идемпотентен: каждое бронирование
// помечается флагом, повторный прогон за тот же день ничего не шлет.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Получаем настройки
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 2. Целевая дата мероприятий
	targetDate := availability.DateOnly(now).AddDate(0, 0, settings.ReminderDays)

	uc.logger.Info("SendReminders: target date %s", targetDate.Format(domain.DateFormat))

	// 3. Выбираем бронирования без отправленного напоминания
	due, err := uc.bookingRepo.ListRemindersDue(ctx, targetDate)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Шлем напоминания и помечаем каждое бронирование.
	// Флаг ставится только после успешной публикации: если прогон упал
	// посередине, следующий дошлет оставшиеся.
	sent := 0
	for _, booking := range due {
		payload := map[string]interface{}{
			"reference":   booking.Reference,
			"event_date":  booking.EventDate.Format(domain.DateFormat),
			"event_time":  booking.EventTime.String(),
			"guest_count": booking.GuestCount,
		}
		if booking.PaymentMethod == domain.PaymentCash {
			payload["balance_due_cents"] = booking.BalanceDueCents
		}

		uc.notifier.Send(ctx, notifier.KindBookingReminder, booking.CustomerEmail, payload)

		if err := uc.bookingRepo.MarkReminderSent(ctx, booking.ID); err != nil {
			uc.logger.Error("SendReminders: failed to mark booking id=%d: %v", booking.ID, err)
			continue
		}
		sent++
	}

	uc.logger.Info("SendReminders: sent %d of %d reminders", sent, len(due))
	return &Response{TargetDate: targetDate, Sent: sent}, nil
}
