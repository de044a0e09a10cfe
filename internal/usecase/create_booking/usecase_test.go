package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
)

type mockBookingRepo struct {
	createFn            func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	countActiveByDateFn func(ctx context.Context, from, to time.Time) (map[string]int, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) CountActiveByDate(ctx context.Context, from, to time.Time) (map[string]int, error) {
	return m.countActiveByDateFn(ctx, from, to)
}

type mockSettingsRepo struct {
	getFn func(ctx context.Context) (domain.Settings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}

type mockPayments struct {
	createCheckoutSessionFn func(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error)
	createSetupSessionFn    func(ctx context.Context, params payments.SetupParams) (*payments.CheckoutSession, error)
}

func (m *mockPayments) CreateCheckoutSession(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error) {
	return m.createCheckoutSessionFn(ctx, params)
}

func (m *mockPayments) CreateSetupSession(ctx context.Context, params payments.SetupParams) (*payments.CheckoutSession, error) {
	return m.createSetupSessionFn(ctx, params)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSettings() domain.Settings {
	return domain.Settings{
		MaxEventsPerDay:    3,
		MinNoticeDays:      3,
		CCSurchargePercent: 10,
		CashDepositPercent: 50,
		StripeFeePercent:   2.9,
		StripeFeeFlatCents: 30,
	}
}

func validRequest() *Request {
	return &Request{
		EventDate:     time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
		EventAddress:  "123 Main St, Springfield",
		CustomerName:  "Ana Torres",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "+1-555-0101",
		GuestCount:    50,
		Duration:      "short",
		Meats:         []string{"carne-asada", "pollo-asado", "al-pastor", "carnitas"},
		Extras:        map[string]int{"rice": 2, "agua-fresca": 1},
		ExtraFlavors:  map[string][]string{"agua-fresca": {"horchata"}},
		PaymentMethod: "card",
	}
}

func emptyCounts() *mockBookingRepo {
	return &mockBookingRepo{
		countActiveByDateFn: func(ctx context.Context, from, to time.Time) (map[string]int, error) {
			return map[string]int{}, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created := *booking
			created.ID = 101
			return &created, nil
		},
	}
}

func settingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}
}

func newTestUseCase(repo *mockBookingRepo, pay *mockPayments) *UseCase {
	uc := NewUseCase(repo, settingsRepo(), pay, "https://qr.example/success", "https://qr.example/cancel", nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CardBooking(t *testing.T) {
	var createdBooking *domain.Booking
	repo := emptyCounts()
	baseCreate := repo.createFn
	repo.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		createdBooking = booking
		return baseCreate(ctx, booking)
	}

	var checkoutAmount int64
	pay := &mockPayments{
		createCheckoutSessionFn: func(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error) {
			checkoutAmount = params.AmountCents
			assert.Equal(t, "ana@example.com", params.CustomerEmail)
			return &payments.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
		},
	}

	uc := newTestUseCase(repo, pay)

	resp, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)

	// 49500 base + 8000 rice + 2500 agua fresca
	assert.Equal(t, int64(60000), resp.TotalPriceCents)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "https://pay.example/cs_1", resp.CheckoutURL)

	// 60000 + 6000 surcharge + round(66000*2.9%) + 30
	assert.NotNil(t, resp.CardChargeCents)
	assert.Equal(t, int64(67944), *resp.CardChargeCents)
	assert.Equal(t, int64(67944), checkoutAmount)
	assert.Nil(t, resp.DepositCents)

	assert.Equal(t, domain.StatusPending, createdBooking.Status)
	assert.Equal(t, domain.PaymentUnpaid, createdBooking.PaymentStatus)
	assert.Equal(t, "cs_1", *createdBooking.StripeSessionID)
	assert.Regexp(t, `^QR-20260720-[0-9A-F]{4}$`, createdBooking.Reference)
}

func TestExecute_CashBooking(t *testing.T) {
	repo := emptyCounts()
	pay := &mockPayments{
		createSetupSessionFn: func(ctx context.Context, params payments.SetupParams) (*payments.CheckoutSession, error) {
			return &payments.CheckoutSession{ID: "cs_2", URL: "https://pay.example/cs_2"}, nil
		},
	}

	uc := newTestUseCase(repo, pay)

	req := validRequest()
	req.PaymentMethod = "cash"

	resp, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	assert.Nil(t, resp.CardChargeCents)
	assert.Equal(t, int64(30000), *resp.DepositCents)
	// Nothing is charged up front, the full total stays due in cash
	assert.Equal(t, int64(60000), *resp.BalanceDueCents)
}

func TestExecute_InsufficientNotice(t *testing.T) {
	uc := newTestUseCase(emptyCounts(), &mockPayments{})

	req := validRequest()
	req.EventDate = time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientNotice)
}

func TestExecute_DateFullyBooked(t *testing.T) {
	repo := emptyCounts()
	repo.countActiveByDateFn = func(ctx context.Context, from, to time.Time) (map[string]int, error) {
		return map[string]int{"2026-07-20": 3}, nil
	}

	uc := newTestUseCase(repo, &mockPayments{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateFullyBooked)
}

func TestExecute_InvalidTier(t *testing.T) {
	uc := newTestUseCase(emptyCounts(), &mockPayments{})

	req := validRequest()
	req.GuestCount = 60

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestExecute_ValidationRejects(t *testing.T) {
	uc := newTestUseCase(emptyCounts(), &mockPayments{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing address", func(r *Request) { r.EventAddress = "" }},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
		{"bad duration", func(r *Request) { r.Duration = "medium" }},
		{"bad payment method", func(r *Request) { r.PaymentMethod = "crypto" }},
		{"three meats", func(r *Request) { r.Meats = r.Meats[:3] }},
		{"duplicate meats", func(r *Request) { r.Meats = []string{"carnitas", "carnitas", "chorizo", "barbacoa"} }},
		{"unknown extra", func(r *Request) { r.Extras = map[string]int{"sushi": 1} }},
		{"flavors without order", func(r *Request) {
			r.Extras = map[string]int{"rice": 1}
			r.ExtraFlavors = map[string][]string{"agua-fresca": {"horchata"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PaymentProviderFailure(t *testing.T) {
	created := false
	repo := emptyCounts()
	baseCreate := repo.createFn
	repo.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		created = true
		return baseCreate(ctx, booking)
	}

	pay := &mockPayments{
		createCheckoutSessionFn: func(ctx context.Context, params payments.CheckoutParams) (*payments.CheckoutSession, error) {
			return nil, assert.AnError
		},
	}

	uc := newTestUseCase(repo, pay)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentProvider)
	assert.False(t, created)
}
