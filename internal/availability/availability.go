package availability

import (
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

// MonthAvailability сводка занятости по датам месяца
type MonthAvailability struct {
	MaxPerDay     int
	MinNoticeDays int
	BookedCounts  map[string]int // "YYYY-MM-DD" -> количество активных бронирований
}

// DateOnly обнуляет время суток, оставляя только календарную дату.
// Дата пересобирается в UTC из компонентов Y/M/D, чтобы сравнение границ
// суток не зависело от таймзоны входного значения.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil возвращает количество календарных дней от now до eventDate.
// Отрицательное значение означает дату в прошлом.
func DaysUntil(eventDate, now time.Time) int {
	return int(DateOnly(eventDate).Sub(DateOnly(now)).Hours() / 24)
}

// IsDateBookable проверяет, можно ли принять бронирование на указанную дату:
// дата не в прошлом, выдержан минимальный срок уведомления и дневной лимит
// не исчерпан.
func IsDateBookable(date, today time.Time, counts map[string]int, maxPerDay, minNoticeDays int) bool {
	daysUntil := DaysUntil(date, today)
	if daysUntil < 0 {
		return false
	}
	if daysUntil < minNoticeDays {
		return false
	}
	if counts[DateOnly(date).Format(domain.DateFormat)] >= maxPerDay {
		return false
	}
	return true
}
