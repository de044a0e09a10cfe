package charge_no_show

// Request модель запроса на списание штрафа за неявку.
// Доступно только владельцу.
type Request struct {
	BookingID int64
}

// Response модель ответа с результатом списания
type Response struct {
	BookingID       int64
	Reference       string
	FeeCents        int64  // списанный штраф
	PaymentIntentID string // ссылка на списание у провайдера
}
