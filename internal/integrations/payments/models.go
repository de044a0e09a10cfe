package payments

// CheckoutSession платежная сессия провайдера
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentIntent списание средств
type PaymentIntent struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// SetupIntent сохранение платежного метода без списания
type SetupIntent struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Customer      string `json:"customer"`
	PaymentMethod string `json:"payment_method"`
}

// Refund возврат средств
type Refund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// CheckoutParams параметры создания платежной сессии
type CheckoutParams struct {
	AmountCents   int64
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Reference     string // попадает в metadata провайдера
}

// SetupParams параметры сессии сохранения карты (без списания)
type SetupParams struct {
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Reference     string
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
