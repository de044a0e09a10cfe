package stripe_webhook

// event модель события провайдера, читаем только нужные поля
type event struct {
	Type string `json:"type"`
	Data struct {
		Object checkoutSession `json:"object"`
	} `json:"data"`
}

// checkoutSession объект завершенной платежной сессии
type checkoutSession struct {
	ID            string  `json:"id"`
	Mode          string  `json:"mode"` // payment или setup
	PaymentIntent *string `json:"payment_intent"`
	SetupIntent   *string `json:"setup_intent"`
}
