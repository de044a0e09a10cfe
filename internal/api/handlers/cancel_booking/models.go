package cancel_booking

import (
	"github.com/quesarica/QR-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model с расчетом по отмене
type CancelBookingResponse struct {
	BookingID   int64  `json:"bookingId"`
	Reference   string `json:"reference"`
	FeeCents    int64  `json:"feeCents"`
	RefundCents int64  `json:"refundCents"`
	Free        bool   `json:"free"`
	DaysUntil   int    `json:"daysUntil"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *cancel_booking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:   resp.BookingID,
		Reference:   resp.Reference,
		FeeCents:    resp.FeeCents,
		RefundCents: resp.RefundCents,
		Free:        resp.Free,
		DaysUntil:   resp.DaysUntil,
	}
}
