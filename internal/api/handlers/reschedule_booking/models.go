package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate string `json:"newDate"` // "2026-09-22"
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *RescheduleBookingRequest) ToUseCaseRequest(token string) (*reschedule_booking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid newDate: %v", err)
	}

	return &reschedule_booking.Request{
		Token:   token,
		NewDate: newDate,
	}, nil
}

// RescheduleBookingResponse HTTP response model.
// Ответ содержит новые токены: старые ссылки недействительны.
type RescheduleBookingResponse struct {
	BookingID       int64  `json:"bookingId"`
	Reference       string `json:"reference"`
	NewDate         string `json:"newDate"`
	CancelToken     string `json:"cancelToken"`
	RescheduleToken string `json:"rescheduleToken"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *reschedule_booking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		BookingID:       resp.BookingID,
		Reference:       resp.Reference,
		NewDate:         resp.NewDate.Format(domain.DateFormat),
		CancelToken:     resp.CancelToken,
		RescheduleToken: resp.RescheduleToken,
	}
}
