package charge_no_show

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
	"github.com/quesarica/QR-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Booking, error)
	chargeNoShowFn func(ctx context.Context, id int64, feeCents int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) ChargeNoShow(ctx context.Context, id int64, feeCents int64) error {
	return m.chargeNoShowFn(ctx, id, feeCents)
}

type mockSettingsRepo struct {
	getFn func(ctx context.Context) (domain.Settings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}

type mockPayments struct {
	chargeStoredCardFn func(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error)
}

func (m *mockPayments) ChargeStoredCard(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error) {
	return m.chargeStoredCardFn(ctx, customerID, paymentMethodID, amountCents, description)
}

type sentMessage struct {
	kind      string
	recipient string
}

type mockNotifier struct {
	sent []sentMessage
}

func (m *mockNotifier) Send(ctx context.Context, kind, recipient string, payload map[string]interface{}) {
	m.sent = append(m.sent, sentMessage{kind: kind, recipient: recipient})
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSettings() domain.Settings {
	return domain.Settings{
		NoShowFeeType: domain.FeeFlat,
		NoShowFeeFlat: 100,
		NotifyEmail:   "owner@example.com",
	}
}

func cashBooking() *domain.Booking {
	return &domain.Booking{
		ID:                    11,
		Reference:             "QR-20260801-FEED",
		EventDate:             time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CustomerEmail:         "guest@example.com",
		TotalPriceCents:       60000,
		PaymentMethod:         domain.PaymentCash,
		PaymentStatus:         domain.PaymentCardOnFile,
		Status:                domain.StatusConfirmed,
		StripeCustomerID:      ptr.Ptr("cus_1"),
		StripePaymentMethodID: ptr.Ptr("pm_1"),
	}
}

func TestExecute_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	uc := NewUseCase(repo, &mockSettingsRepo{}, &mockPayments{}, &mockNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CardBookingRejected(t *testing.T) {
	booking := cashBooking()
	booking.PaymentMethod = domain.PaymentCard

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) { return booking, nil },
	}

	uc := NewUseCase(repo, &mockSettingsRepo{}, &mockPayments{}, &mockNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.ErrorIs(t, err, ErrNotCashBooking)
}

func TestExecute_AlreadyCharged(t *testing.T) {
	booking := cashBooking()
	booking.NoShowFeeCents = 10000

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) { return booking, nil },
	}

	uc := NewUseCase(repo, &mockSettingsRepo{}, &mockPayments{}, &mockNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.ErrorIs(t, err, ErrAlreadyCharged)
}

func TestExecute_NoCardOnFile(t *testing.T) {
	booking := cashBooking()
	booking.StripePaymentMethodID = nil

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) { return booking, nil },
	}

	uc := NewUseCase(repo, &mockSettingsRepo{}, &mockPayments{}, &mockNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.ErrorIs(t, err, ErrNoCardOnFile)
}

func TestExecute_CardDeclined(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) { return cashBooking(), nil },
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}
	pay := &mockPayments{
		chargeStoredCardFn: func(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error) {
			return nil, payments.ErrCardDeclined
		},
	}

	uc := NewUseCase(repo, settings, pay, &mockNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.ErrorIs(t, err, ErrCardDeclined)
}

func TestExecute_ChargesFlatFee(t *testing.T) {
	var persistedFee int64
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) { return cashBooking(), nil },
		chargeNoShowFn: func(ctx context.Context, id int64, feeCents int64) error {
			persistedFee = feeCents
			return nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}

	var chargedCustomer, chargedMethod string
	var chargedAmount int64
	pay := &mockPayments{
		chargeStoredCardFn: func(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error) {
			chargedCustomer, chargedMethod, chargedAmount = customerID, paymentMethodID, amountCents
			return &payments.PaymentIntent{ID: "pi_noshow", Status: "succeeded"}, nil
		},
	}

	notif := &mockNotifier{}
	uc := NewUseCase(repo, settings, pay, notif, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.NoError(t, err)

	assert.Equal(t, int64(10000), resp.FeeCents)
	assert.Equal(t, "pi_noshow", resp.PaymentIntentID)

	assert.Equal(t, "cus_1", chargedCustomer)
	assert.Equal(t, "pm_1", chargedMethod)
	assert.Equal(t, int64(10000), chargedAmount)
	assert.Equal(t, int64(10000), persistedFee)

	assert.Len(t, notif.sent, 2)
	assert.Equal(t, "guest@example.com", notif.sent[0].recipient)
	assert.Equal(t, "owner@example.com", notif.sent[1].recipient)
}

func TestExecute_PercentFeeFromFullTotal(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn:      func(ctx context.Context, id int64) (*domain.Booking, error) { return cashBooking(), nil },
		chargeNoShowFn: func(ctx context.Context, id int64, feeCents int64) error { return nil },
	}

	s := testSettings()
	s.NoShowFeeType = domain.FeePercent
	s.NoShowFeePercent = 25
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return s, nil },
	}

	pay := &mockPayments{
		chargeStoredCardFn: func(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*payments.PaymentIntent, error) {
			return &payments.PaymentIntent{ID: "pi_noshow"}, nil
		},
	}

	uc := NewUseCase(repo, settings, pay, &mockNotifier{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 11})
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), resp.FeeCents)
}
