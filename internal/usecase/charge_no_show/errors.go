package charge_no_show

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("charge_no_show: booking not found")

	// ErrNotCashBooking возвращается для карточных бронирований, они уже оплачены
	ErrNotCashBooking = errors.New("charge_no_show: booking is not a cash booking")

	// ErrNoCardOnFile возвращается, когда у бронирования нет сохраненной карты
	ErrNoCardOnFile = errors.New("charge_no_show: no card on file")

	// ErrAlreadyCharged возвращается, когда штраф за неявку уже списан
	ErrAlreadyCharged = errors.New("charge_no_show: no-show fee already charged")

	// ErrCardDeclined возвращается, когда провайдер отклонил списание
	ErrCardDeclined = errors.New("charge_no_show: card declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("charge_no_show: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("charge_no_show: internal error")
)
