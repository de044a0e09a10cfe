package get_availability

import (
	"github.com/quesarica/QR-BookingService/internal/usecase/get_availability"
)

// DayAvailabilityResponse доступность одного дня
type DayAvailabilityResponse struct {
	Date     string `json:"date"`
	Booked   int    `json:"booked"`
	Bookable bool   `json:"bookable"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Month         string                    `json:"month"`
	MaxPerDay     int                       `json:"maxPerDay"`
	MinNoticeDays int                       `json:"minNoticeDays"`
	Days          []DayAvailabilityResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *get_availability.Response) *AvailabilityResponse {
	days := make([]DayAvailabilityResponse, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayAvailabilityResponse{
			Date:     day.Date,
			Booked:   day.Booked,
			Bookable: day.Bookable,
		}
	}

	return &AvailabilityResponse{
		Month:         resp.Month,
		MaxPerDay:     resp.MaxPerDay,
		MinNoticeDays: resp.MinNoticeDays,
		Days:          days,
	}
}
