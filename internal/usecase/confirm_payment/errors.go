package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда сессия не привязана к бронированию
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
