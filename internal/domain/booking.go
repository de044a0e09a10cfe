package domain

import (
	"time"

	"github.com/quesarica/QR-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentMethod represents how the customer pays for the event
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "unpaid"
	PaymentPaid       PaymentStatus = "paid"
	PaymentCardOnFile PaymentStatus = "card_on_file"
)

// Booking represents one catering engagement
type Booking struct {
	ID        int64
	Reference string // cosmetic identifier QR-YYYYMMDD-XXXX, never used for lookups

	EventDate    time.Time        // calendar date of the event
	EventTime    types.TimeString // optional serving time, e.g. "17:30"
	EventAddress string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	GuestCount   int
	Duration     ServiceDuration
	Meats        []string            // exactly MeatSelectionCount distinct options
	Extras       map[string]int      // catalog id -> quantity
	ExtraFlavors map[string][]string // flavor sub-selections, agua-fresca only

	TotalPriceCents int64 // recomputed server-side, never trusted from the client

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        BookingStatus

	// Self-service capability tokens. Cleared when the booking is cancelled,
	// rotated when it is rescheduled.
	CancelToken     string
	RescheduleToken string

	// Payment provider references
	StripeSessionID       *string
	StripeCustomerID      *string
	StripePaymentMethodID *string
	StripePaymentIntentID *string

	// Monetary ledger, all in cents
	CancellationFeeCents int64
	NoShowFeeCents       int64
	RefundCents          int64
	DepositCents         int64
	BalanceDueCents      int64

	ReminderSent bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCancelled
}

// CanBeRescheduled returns true if the booking can still be rescheduled
func (b *Booking) CanBeRescheduled() bool {
	return b.Status != StatusCancelled
}

// IsPaid returns true if a payment has been captured for the booking
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// HasStoredPaymentMethod returns true if a card was saved for later charging
func (b *Booking) HasStoredPaymentMethod() bool {
	return b.StripeCustomerID != nil && *b.StripeCustomerID != "" &&
		b.StripePaymentMethodID != nil && *b.StripePaymentMethodID != ""
}

// NoShowCharged returns true if a no-show fee was already charged.
// A no-show fee may be charged at most once per booking.
func (b *Booking) NoShowCharged() bool {
	return b.NoShowFeeCents > 0
}

// BookingsFilter filters bookings for owner-facing listings
type BookingsFilter struct {
	Status           *BookingStatus // optional status filter
	StartDate        *time.Time     // optional period start
	EndDate          *time.Time     // optional period end
	IncludeCancelled bool           // include cancelled bookings when no status filter is set
}
