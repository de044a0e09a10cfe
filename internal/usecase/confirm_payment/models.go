package confirm_payment

// Request модель запроса на подтверждение оплаты.
// Заполняется из события checkout.session.completed провайдера.
type Request struct {
	SessionID       string  // ID завершенной платежной сессии
	Mode            string  // payment или setup
	PaymentIntentID *string // ID списания, только для mode=payment
	SetupIntentID   *string // ID сохранения карты, только для mode=setup
}

// Response модель ответа
type Response struct {
	BookingID int64
	Status    string
	Confirmed bool // false, если событие было повторным и ничего не изменило
}
