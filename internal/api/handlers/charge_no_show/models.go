package charge_no_show

import (
	"github.com/quesarica/QR-BookingService/internal/usecase/charge_no_show"
)

// ChargeNoShowResponse HTTP response model
type ChargeNoShowResponse struct {
	BookingID       int64  `json:"bookingId"`
	Reference       string `json:"reference"`
	FeeCents        int64  `json:"feeCents"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *charge_no_show.Response) *ChargeNoShowResponse {
	return &ChargeNoShowResponse{
		BookingID:       resp.BookingID,
		Reference:       resp.Reference,
		FeeCents:        resp.FeeCents,
		PaymentIntentID: resp.PaymentIntentID,
	}
}
