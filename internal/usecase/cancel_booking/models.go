package cancel_booking

// Request модель запроса на отмену бронирования.
// Клиент отменяет по cancel-токену из письма, владелец по ID.
type Request struct {
	Token     string // self-service cancel-токен
	BookingID int64  // ID бронирования, только для владельца
	ByOwner   bool
}

// Response модель ответа с расчетом по отмене
type Response struct {
	BookingID   int64
	Reference   string
	FeeCents    int64 // удержанный сбор за отмену
	RefundCents int64 // возвращенная сумма
	Free        bool  // отмена попала в бесплатное окно
	DaysUntil   int   // дней до мероприятия на момент отмены
}
