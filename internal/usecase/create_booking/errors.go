package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTier возвращается, когда количество гостей не совпадает с ценовой сеткой
	ErrInvalidTier = errors.New("create_booking: guest count does not match a pricing tier")

	// ErrInsufficientNotice возвращается, когда дата нарушает минимальный срок уведомления
	ErrInsufficientNotice = errors.New("create_booking: date is too soon")

	// ErrDateFullyBooked возвращается, когда на дату достигнут дневной лимит
	ErrDateFullyBooked = errors.New("create_booking: date is fully booked")

	// ErrPaymentProvider возвращается при сбое создания платежной сессии
	ErrPaymentProvider = errors.New("create_booking: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
