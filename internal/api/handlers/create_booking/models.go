package create_booking

import (
	"fmt"
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/usecase/create_booking"
	"github.com/quesarica/QR-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventDate     string              `json:"eventDate"` // "2026-09-15"
	EventTime     string              `json:"eventTime,omitempty"`
	EventAddress  string              `json:"eventAddress"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	CustomerPhone string              `json:"customerPhone"`
	GuestCount    int                 `json:"guestCount"`
	Duration      string              `json:"duration"`
	Meats         []string            `json:"meats"`
	Extras        map[string]int      `json:"extras,omitempty"`
	ExtraFlavors  map[string][]string `json:"extraFlavors,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest() (*create_booking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid eventDate: %v", err)
	}

	var eventTime types.TimeString
	if r.EventTime != "" {
		eventTime, err = types.NewTimeStringFromString(r.EventTime)
		if err != nil {
			return nil, fmt.Errorf("invalid eventTime: %v", err)
		}
	}

	return &create_booking.Request{
		EventDate:     eventDate,
		EventTime:     eventTime,
		EventAddress:  r.EventAddress,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		GuestCount:    r.GuestCount,
		Duration:      r.Duration,
		Meats:         r.Meats,
		Extras:        r.Extras,
		ExtraFlavors:  r.ExtraFlavors,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	TotalPriceCents int64  `json:"totalPriceCents"`
	Status          string `json:"status"`

	CardChargeCents *int64 `json:"cardChargeCents,omitempty"`
	DepositCents    *int64 `json:"depositCents,omitempty"`
	BalanceDueCents *int64 `json:"balanceDueCents,omitempty"`

	CheckoutURL string `json:"checkoutUrl"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *create_booking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		TotalPriceCents: resp.TotalPriceCents,
		Status:          resp.Status,
		CardChargeCents: resp.CardChargeCents,
		DepositCents:    resp.DepositCents,
		BalanceDueCents: resp.BalanceDueCents,
		CheckoutURL:     resp.CheckoutURL,
	}
}
