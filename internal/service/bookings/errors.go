package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotPending возвращается при подтверждении бронирования не в статусе pending
	ErrNotPending = errors.New("booking is not pending")

	// ErrNotCancelled возвращается при удалении неотмененного бронирования
	ErrNotCancelled = errors.New("booking is not cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
