package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
)

type mockBookingRepo struct {
	getByRescheduleTokenFn func(ctx context.Context, token string) (*domain.Booking, error)
	countActiveByDateFn    func(ctx context.Context, from, to time.Time) (map[string]int, error)
	rescheduleFn           func(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error
}

func (m *mockBookingRepo) GetByRescheduleToken(ctx context.Context, token string) (*domain.Booking, error) {
	return m.getByRescheduleTokenFn(ctx, token)
}

func (m *mockBookingRepo) CountActiveByDate(ctx context.Context, from, to time.Time) (map[string]int, error) {
	return m.countActiveByDateFn(ctx, from, to)
}

func (m *mockBookingRepo) Reschedule(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error {
	return m.rescheduleFn(ctx, id, newDate, cancelToken, rescheduleToken)
}

type mockSettingsRepo struct {
	getFn func(ctx context.Context) (domain.Settings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		MaxEventsPerDay: 3,
		MinNoticeDays:   3,
		NotifyEmail:     "owner@example.com",
	}
}

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:              7,
		Reference:       "QR-20260710-C0DE",
		EventDate:       time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CustomerEmail:   "guest@example.com",
		Status:          domain.StatusConfirmed,
		CancelToken:     "old-cancel",
		RescheduleToken: "old-reschedule",
	}
}

func newTestUseCase(repo *mockBookingRepo, settings *mockSettingsRepo, notif *mockNotifier) *UseCase {
	uc := NewUseCase(repo, settings, &mockTxManager{}, notif, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockSettingsRepo{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), &Request{NewDate: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Token: "tok"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	uc := newTestUseCase(repo, &mockSettingsRepo{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), &Request{Token: "missing", NewDate: time.Now()})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBooking(t *testing.T) {
	booking := activeBooking()
	booking.Status = domain.StatusCancelled

	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return booking, nil
		},
	}

	uc := newTestUseCase(repo, &mockSettingsRepo{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), &Request{Token: "old-reschedule", NewDate: time.Now()})
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestExecute_InsufficientNotice(t *testing.T) {
	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return activeBooking(), nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}

	uc := newTestUseCase(repo, settings, &mockNotifier{})

	// Two days ahead with a three-day minimum
	_, err := uc.Execute(context.Background(), &Request{
		Token:   "old-reschedule",
		NewDate: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInsufficientNotice)
}

func TestExecute_DateFullyBooked(t *testing.T) {
	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return activeBooking(), nil
		},
		countActiveByDateFn: func(ctx context.Context, from, to time.Time) (map[string]int, error) {
			return map[string]int{"2026-07-20": 3}, nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}

	uc := newTestUseCase(repo, settings, &mockNotifier{})

	_, err := uc.Execute(context.Background(), &Request{
		Token:   "old-reschedule",
		NewDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateFullyBooked)
}

func TestExecute_SameDateExcludesOwnBooking(t *testing.T) {
	// The booking itself occupies one of the three slots on its own date,
	// so moving within the same date must not count it
	rescheduled := false
	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return activeBooking(), nil
		},
		countActiveByDateFn: func(ctx context.Context, from, to time.Time) (map[string]int, error) {
			return map[string]int{"2026-07-10": 3}, nil
		},
		rescheduleFn: func(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error {
			rescheduled = true
			return nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}

	uc := newTestUseCase(repo, settings, &mockNotifier{})

	_, err := uc.Execute(context.Background(), &Request{
		Token:   "old-reschedule",
		NewDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.True(t, rescheduled)
}

func TestExecute_RotatesTokensAndNotifies(t *testing.T) {
	var persistedCancel, persistedReschedule string
	repo := &mockBookingRepo{
		getByRescheduleTokenFn: func(ctx context.Context, token string) (*domain.Booking, error) {
			return activeBooking(), nil
		},
		countActiveByDateFn: func(ctx context.Context, from, to time.Time) (map[string]int, error) {
			return map[string]int{}, nil
		},
		rescheduleFn: func(ctx context.Context, id int64, newDate time.Time, cancelToken, rescheduleToken string) error {
			assert.Equal(t, int64(7), id)
			persistedCancel, persistedReschedule = cancelToken, rescheduleToken
			return nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) { return testSettings(), nil },
	}

	notif := &mockNotifier{}
	uc := newTestUseCase(repo, settings, notif)

	resp, err := uc.Execute(context.Background(), &Request{
		Token:   "old-reschedule",
		NewDate: time.Date(2026, 7, 25, 14, 30, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	// Time-of-day is dropped from the new date
	assert.Equal(t, time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC), resp.NewDate)

	assert.NotEmpty(t, resp.CancelToken)
	assert.NotEmpty(t, resp.RescheduleToken)
	assert.NotEqual(t, "old-cancel", resp.CancelToken)
	assert.NotEqual(t, "old-reschedule", resp.RescheduleToken)
	assert.Equal(t, persistedCancel, resp.CancelToken)
	assert.Equal(t, persistedReschedule, resp.RescheduleToken)

	assert.Len(t, notif.sent, 2)
	assert.Equal(t, "guest@example.com", notif.sent[0].recipient)
	assert.Equal(t, "owner@example.com", notif.sent[1].recipient)
}
