package domain

// Default policy values, used when no settings record exists
const (
	DefaultMaxEventsPerDay        = 3
	DefaultMinNoticeDays          = 3
	DefaultReminderDays           = 5
	DefaultFreeCancellationDays   = 3
	DefaultCancellationFeeFlat    = 50 // major units
	DefaultCancellationFeePercent = 25.0
	DefaultNoShowFeeFlat          = 100 // major units
	DefaultNoShowFeePercent       = 50.0
	DefaultCCSurchargePercent     = 10.0
	DefaultCashDepositPercent     = 50.0
	DefaultStripeFeePercent       = 2.9
	DefaultStripeFeeFlatCents     = 30
)

// Business validation constants
const (
	MaxAddressLength = 300
	MaxNameLength    = 100
	MaxExtraQuantity = 50
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
