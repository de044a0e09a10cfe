package models

import (
	"errors"
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status           *string    `json:"status,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	EventDate    string `json:"eventDate"` // "2026-09-15"
	EventTime    string `json:"eventTime,omitempty"`
	EventAddress string `json:"eventAddress"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	GuestCount   int                 `json:"guestCount"`
	Duration     string              `json:"duration"`
	Meats        []string            `json:"meats"`
	Extras       map[string]int      `json:"extras,omitempty"`
	ExtraFlavors map[string][]string `json:"extraFlavors,omitempty"`

	TotalPriceCents int64 `json:"totalPriceCents"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`

	CancellationFeeCents int64 `json:"cancellationFeeCents,omitempty"`
	NoShowFeeCents       int64 `json:"noShowFeeCents,omitempty"`
	RefundCents          int64 `json:"refundCents,omitempty"`
	DepositCents         int64 `json:"depositCents,omitempty"`
	BalanceDueCents      int64 `json:"balanceDueCents,omitempty"`

	ReminderSent bool `json:"reminderSent"`

	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		Reference:            b.Reference,
		EventDate:            b.EventDate.Format(domain.DateFormat),
		EventTime:            b.EventTime.String(),
		EventAddress:         b.EventAddress,
		CustomerName:         b.CustomerName,
		CustomerEmail:        b.CustomerEmail,
		CustomerPhone:        b.CustomerPhone,
		GuestCount:           b.GuestCount,
		Duration:             string(b.Duration),
		Meats:                b.Meats,
		Extras:               b.Extras,
		ExtraFlavors:         b.ExtraFlavors,
		TotalPriceCents:      b.TotalPriceCents,
		PaymentMethod:        string(b.PaymentMethod),
		PaymentStatus:        string(b.PaymentStatus),
		Status:               string(b.Status),
		CancellationFeeCents: b.CancellationFeeCents,
		NoShowFeeCents:       b.NoShowFeeCents,
		RefundCents:          b.RefundCents,
		DepositCents:         b.DepositCents,
		BalanceDueCents:      b.BalanceDueCents,
		ReminderSent:         b.ReminderSent,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
