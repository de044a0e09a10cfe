package feepolicy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

func testSettings() domain.Settings {
	return domain.Settings{
		FreeCancellationDays:   7,
		CancellationFeeType:    domain.FeeFlat,
		CancellationFeeFlat:    50,
		CancellationFeePercent: 10,
		NoShowFeeType:          domain.FeeFlat,
		NoShowFeeFlat:          100,
		NoShowFeePercent:       25,
	}
}

func TestCancellationFee_FreeWindow(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	// Exactly on the boundary is still free
	eventDate := time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC)

	q := CancellationFee(60000, testSettings(), eventDate, now)

	assert.True(t, q.Free)
	assert.Equal(t, int64(0), q.FeeCents)
	assert.Equal(t, int64(60000), q.RefundCents)
	assert.Equal(t, 7, q.DaysUntil)
}

func TestCancellationFee_FlatFee(t *testing.T) {
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	eventDate := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	q := CancellationFee(60000, testSettings(), eventDate, now)

	assert.False(t, q.Free)
	assert.Equal(t, int64(5000), q.FeeCents)
	assert.Equal(t, int64(55000), q.RefundCents)
	assert.Equal(t, 3, q.DaysUntil)
}

func TestCancellationFee_PercentFee(t *testing.T) {
	s := testSettings()
	s.CancellationFeeType = domain.FeePercent

	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	eventDate := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)

	q := CancellationFee(60000, s, eventDate, now)

	assert.Equal(t, int64(6000), q.FeeCents)
	assert.Equal(t, int64(54000), q.RefundCents)
}

func TestCancellationFee_RefundNeverNegative(t *testing.T) {
	s := testSettings()
	s.CancellationFeeFlat = 700 // larger than the order total

	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	eventDate := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)

	q := CancellationFee(39500, s, eventDate, now)

	assert.Equal(t, int64(70000), q.FeeCents)
	assert.Equal(t, int64(0), q.RefundCents)
}

func TestNoShowFee(t *testing.T) {
	s := testSettings()
	assert.Equal(t, int64(10000), NoShowFee(60000, s))

	s.NoShowFeeType = domain.FeePercent
	assert.Equal(t, int64(15000), NoShowFee(60000, s))
}

func TestComputeCardCharge(t *testing.T) {
	// 60000 + 10% surcharge = 66000, processing 2.9% of 66000 + 30
	c := ComputeCardCharge(60000, 10, 2.9, 30)

	assert.Equal(t, int64(6000), c.SurchargeCents)
	assert.Equal(t, int64(1944), c.ProcessingFeeCents)
	assert.Equal(t, int64(67944), c.ChargeAmountCents)
}

func TestComputeCardCharge_RoundsHalfUp(t *testing.T) {
	// 1% of 50 cents is 0.5, rounds to 1
	c := ComputeCardCharge(50, 1, 0, 0)
	assert.Equal(t, int64(1), c.SurchargeCents)
}

func TestComputeCashTerms(t *testing.T) {
	terms := ComputeCashTerms(60000, 50)

	assert.Equal(t, int64(30000), terms.DepositCents)
	// Nothing is collected up front, the full amount stays due
	assert.Equal(t, int64(60000), terms.BalanceDueCents)
}
