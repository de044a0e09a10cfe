package domain

import "time"

// FeeType distinguishes flat fees from percent-of-total fees
type FeeType string

const (
	FeeFlat    FeeType = "flat"
	FeePercent FeeType = "percent"
)

// Settings is the process-wide policy record. A single row owned by the
// persistence layer; every pricing and fee computation reads a copy of it.
type Settings struct {
	MaxEventsPerDay int // daily booking cap
	MinNoticeDays   int // minimum advance notice for new bookings and reschedules
	ReminderDays    int // days before the event to send a reminder

	FreeCancellationDays   int // cancellations at least this many days out are free
	CancellationFeeType    FeeType
	CancellationFeeFlat    int64 // major currency units
	CancellationFeePercent float64

	NoShowFeeType    FeeType
	NoShowFeeFlat    int64 // major currency units
	NoShowFeePercent float64

	CCSurchargePercent float64
	CashDepositPercent float64
	StripeFeePercent   float64
	StripeFeeFlatCents int64

	NotifyEmail string
	NotifyPhone string

	UpdatedAt time.Time
}

// DefaultSettings returns the policy defaults applied when no settings
// record exists yet
func DefaultSettings() Settings {
	return Settings{
		MaxEventsPerDay:        DefaultMaxEventsPerDay,
		MinNoticeDays:          DefaultMinNoticeDays,
		ReminderDays:           DefaultReminderDays,
		FreeCancellationDays:   DefaultFreeCancellationDays,
		CancellationFeeType:    FeeFlat,
		CancellationFeeFlat:    DefaultCancellationFeeFlat,
		CancellationFeePercent: DefaultCancellationFeePercent,
		NoShowFeeType:          FeeFlat,
		NoShowFeeFlat:          DefaultNoShowFeeFlat,
		NoShowFeePercent:       DefaultNoShowFeePercent,
		CCSurchargePercent:     DefaultCCSurchargePercent,
		CashDepositPercent:     DefaultCashDepositPercent,
		StripeFeePercent:       DefaultStripeFeePercent,
		StripeFeeFlatCents:     DefaultStripeFeeFlatCents,
	}
}
