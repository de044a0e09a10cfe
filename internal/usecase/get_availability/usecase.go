package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/quesarica/QR-BookingService/internal/availability"
	"github.com/quesarica/QR-BookingService/internal/domain"
)

// UseCase use case получения доступности календаря на месяц
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступность каждого дня месяца. День доступен,
// если он не в прошлом, не нарушает минимальный срок уведомления и
// дневной лимит мероприятий еще не достигнут.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Year < 2000 || req.Year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	// 2. Границы месяца
	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	uc.logger.Info("GetAvailability: month=%s", monthStart.Format(domain.MonthFormat))

	// 3. Получаем настройки и занятость
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	counts, err := uc.bookingRepo.CountActiveByDate(ctx, monthStart, monthEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	// 4. Собираем ответ по дням
	today := availability.DateOnly(uc.timeProvider.Now())
	days := make([]DayAvailability, 0, monthEnd.Day())

	for date := monthStart; !date.After(monthEnd); date = date.AddDate(0, 0, 1) {
		key := date.Format(domain.DateFormat)
		days = append(days, DayAvailability{
			Date:     key,
			Booked:   counts[key],
			Bookable: availability.IsDateBookable(date, today, counts, settings.MaxEventsPerDay, settings.MinNoticeDays),
		})
	}

	return &Response{
		Month:         monthStart.Format(domain.MonthFormat),
		MaxPerDay:     settings.MaxEventsPerDay,
		MinNoticeDays: settings.MinNoticeDays,
		Days:          days,
	}, nil
}
