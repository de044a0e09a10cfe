package reschedule_booking

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	Token   string    // self-service reschedule-токен
	NewDate time.Time // новая дата мероприятия
}

// Response модель ответа с результатом переноса.
// Старые токены после переноса недействительны.
type Response struct {
	BookingID       int64
	Reference       string
	NewDate         time.Time
	CancelToken     string // новый cancel-токен
	RescheduleToken string // новый reschedule-токен
}
