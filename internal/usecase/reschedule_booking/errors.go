package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingCancelled возвращается при переносе отмененного бронирования
	ErrBookingCancelled = errors.New("reschedule_booking: booking is cancelled")

	// ErrInsufficientNotice возвращается, когда новая дата нарушает минимальный срок уведомления
	ErrInsufficientNotice = errors.New("reschedule_booking: new date is too soon")

	// ErrDateFullyBooked возвращается, когда на новую дату достигнут дневной лимит
	ErrDateFullyBooked = errors.New("reschedule_booking: new date is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
