package models

import (
	"time"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

// SettingsResponse ответ с текущими настройками политик
type SettingsResponse struct {
	MaxEventsPerDay int `json:"maxEventsPerDay"`
	MinNoticeDays   int `json:"minNoticeDays"`
	ReminderDays    int `json:"reminderDays"`

	FreeCancellationDays   int     `json:"freeCancellationDays"`
	CancellationFeeType    string  `json:"cancellationFeeType"`
	CancellationFeeFlat    int64   `json:"cancellationFeeFlat"`
	CancellationFeePercent float64 `json:"cancellationFeePercent"`

	NoShowFeeType    string  `json:"noShowFeeType"`
	NoShowFeeFlat    int64   `json:"noShowFeeFlat"`
	NoShowFeePercent float64 `json:"noShowFeePercent"`

	CCSurchargePercent float64 `json:"ccSurchargePercent"`
	CashDepositPercent float64 `json:"cashDepositPercent"`
	StripeFeePercent   float64 `json:"stripeFeePercent"`
	StripeFeeFlatCents int64   `json:"stripeFeeFlatCents"`

	NotifyEmail string `json:"notifyEmail,omitempty"`
	NotifyPhone string `json:"notifyPhone,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateSettingsRequest запрос на обновление настроек.
// Все поля опциональны: отсутствующие остаются без изменений.
type UpdateSettingsRequest struct {
	MaxEventsPerDay *int `json:"maxEventsPerDay,omitempty"`
	MinNoticeDays   *int `json:"minNoticeDays,omitempty"`
	ReminderDays    *int `json:"reminderDays,omitempty"`

	FreeCancellationDays   *int     `json:"freeCancellationDays,omitempty"`
	CancellationFeeType    *string  `json:"cancellationFeeType,omitempty"`
	CancellationFeeFlat    *int64   `json:"cancellationFeeFlat,omitempty"`
	CancellationFeePercent *float64 `json:"cancellationFeePercent,omitempty"`

	NoShowFeeType    *string  `json:"noShowFeeType,omitempty"`
	NoShowFeeFlat    *int64   `json:"noShowFeeFlat,omitempty"`
	NoShowFeePercent *float64 `json:"noShowFeePercent,omitempty"`

	CCSurchargePercent *float64 `json:"ccSurchargePercent,omitempty"`
	CashDepositPercent *float64 `json:"cashDepositPercent,omitempty"`
	StripeFeePercent   *float64 `json:"stripeFeePercent,omitempty"`
	StripeFeeFlatCents *int64   `json:"stripeFeeFlatCents,omitempty"`

	NotifyEmail *string `json:"notifyEmail,omitempty"`
	NotifyPhone *string `json:"notifyPhone,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		MaxEventsPerDay:        s.MaxEventsPerDay,
		MinNoticeDays:          s.MinNoticeDays,
		ReminderDays:           s.ReminderDays,
		FreeCancellationDays:   s.FreeCancellationDays,
		CancellationFeeType:    string(s.CancellationFeeType),
		CancellationFeeFlat:    s.CancellationFeeFlat,
		CancellationFeePercent: s.CancellationFeePercent,
		NoShowFeeType:          string(s.NoShowFeeType),
		NoShowFeeFlat:          s.NoShowFeeFlat,
		NoShowFeePercent:       s.NoShowFeePercent,
		CCSurchargePercent:     s.CCSurchargePercent,
		CashDepositPercent:     s.CashDepositPercent,
		StripeFeePercent:       s.StripeFeePercent,
		StripeFeeFlatCents:     s.StripeFeeFlatCents,
		NotifyEmail:            s.NotifyEmail,
		NotifyPhone:            s.NotifyPhone,
		UpdatedAt:              s.UpdatedAt,
	}
}

// ApplyTo накладывает заполненные поля запроса на текущие настройки
func (r *UpdateSettingsRequest) ApplyTo(s *domain.Settings) {
	if r.MaxEventsPerDay != nil {
		s.MaxEventsPerDay = *r.MaxEventsPerDay
	}
	if r.MinNoticeDays != nil {
		s.MinNoticeDays = *r.MinNoticeDays
	}
	if r.ReminderDays != nil {
		s.ReminderDays = *r.ReminderDays
	}
	if r.FreeCancellationDays != nil {
		s.FreeCancellationDays = *r.FreeCancellationDays
	}
	if r.CancellationFeeType != nil {
		s.CancellationFeeType = domain.FeeType(*r.CancellationFeeType)
	}
	if r.CancellationFeeFlat != nil {
		s.CancellationFeeFlat = *r.CancellationFeeFlat
	}
	if r.CancellationFeePercent != nil {
		s.CancellationFeePercent = *r.CancellationFeePercent
	}
	if r.NoShowFeeType != nil {
		s.NoShowFeeType = domain.FeeType(*r.NoShowFeeType)
	}
	if r.NoShowFeeFlat != nil {
		s.NoShowFeeFlat = *r.NoShowFeeFlat
	}
	if r.NoShowFeePercent != nil {
		s.NoShowFeePercent = *r.NoShowFeePercent
	}
	if r.CCSurchargePercent != nil {
		s.CCSurchargePercent = *r.CCSurchargePercent
	}
	if r.CashDepositPercent != nil {
		s.CashDepositPercent = *r.CashDepositPercent
	}
	if r.StripeFeePercent != nil {
		s.StripeFeePercent = *r.StripeFeePercent
	}
	if r.StripeFeeFlatCents != nil {
		s.StripeFeeFlatCents = *r.StripeFeeFlatCents
	}
	if r.NotifyEmail != nil {
		s.NotifyEmail = *r.NotifyEmail
	}
	if r.NotifyPhone != nil {
		s.NotifyPhone = *r.NotifyPhone
	}
}
