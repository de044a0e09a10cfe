package feepolicy

import (
	"math"
	"time"

	"github.com/quesarica/QR-BookingService/internal/availability"
	"github.com/quesarica/QR-BookingService/internal/domain"
)

// Quote результат расчета штрафа за отмену
type Quote struct {
	FeeCents    int64
	RefundCents int64
	Free        bool
	DaysUntil   int
}

// CancellationFee считает штраф за отмену бронирования.
// Внутри окна бесплатной отмены штраф равен нулю, снаружи берется
// фиксированная сумма или процент от полной цены. Функция ступенчатая: никакой
// интерполяции между границей окна и штрафом нет, это осознанная политика.
func CancellationFee(totalCents int64, s domain.Settings, eventDate, now time.Time) Quote {
	daysUntil := availability.DaysUntil(eventDate, now)

	if daysUntil >= s.FreeCancellationDays {
		return Quote{FeeCents: 0, RefundCents: totalCents, Free: true, DaysUntil: daysUntil}
	}

	var fee int64
	if s.CancellationFeeType == domain.FeePercent {
		fee = percentOf(totalCents, s.CancellationFeePercent)
	} else {
		fee = s.CancellationFeeFlat * 100 // major units -> cents
	}

	refund := totalCents - fee
	if refund < 0 {
		refund = 0
	}

	return Quote{FeeCents: fee, RefundCents: refund, Free: false, DaysUntil: daysUntil}
}

// NoShowFee считает штраф за неявку по паре настроек no-show.
// Процентный вариант считается от полной цены заказа.
func NoShowFee(totalCents int64, s domain.Settings) int64 {
	if s.NoShowFeeType == domain.FeePercent {
		return percentOf(totalCents, s.NoShowFeePercent)
	}
	return s.NoShowFeeFlat * 100 // major units -> cents
}

// CardCharge разбивка суммы списания при оплате картой
type CardCharge struct {
	SurchargeCents     int64
	ProcessingFeeCents int64
	ChargeAmountCents  int64
}

// ComputeCardCharge считает сумму списания при оплате картой:
// наценка за карту от полной цены, затем комиссия процессинга от
// (цена + наценка) плюс фиксированная часть.
func ComputeCardCharge(totalCents int64, surchargePercent, feePercent float64, feeFlatCents int64) CardCharge {
	surcharge := percentOf(totalCents, surchargePercent)
	processing := percentOf(totalCents+surcharge, feePercent) + feeFlatCents

	return CardCharge{
		SurchargeCents:     surcharge,
		ProcessingFeeCents: processing,
		ChargeAmountCents:  totalCents + surcharge + processing,
	}
}

// CashTerms условия оплаты наличными
type CashTerms struct {
	DepositCents    int64 // справочная величина депозита
	BalanceDueCents int64 // к оплате в день мероприятия
}

// ComputeCashTerms считает условия для оплаты наличными: в момент
// бронирования ничего не списывается (карта только сохраняется),
// вся сумма остается к оплате в день мероприятия.
func ComputeCashTerms(totalCents int64, depositPercent float64) CashTerms {
	return CashTerms{
		DepositCents:    percentOf(totalCents, depositPercent),
		BalanceDueCents: totalCents,
	}
}

func percentOf(amountCents int64, percent float64) int64 {
	return int64(math.Round(float64(amountCents) * percent / 100))
}
