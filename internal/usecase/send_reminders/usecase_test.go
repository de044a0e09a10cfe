package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

type mockBookingRepo struct {
	listRemindersDueFn func(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error)
	markReminderSentFn func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) ListRemindersDue(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
	return m.listRemindersDueFn(ctx, eventDate)
}

func (m *mockBookingRepo) MarkReminderSent(ctx context.Context, id int64) error {
	return m.markReminderSentFn(ctx, id)
}

type mockSettingsRepo struct {
	getFn func(ctx context.Context) (domain.Settings, error)
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}

type sentMessage struct {
	kind      string
	recipient string
	payload   map[string]interface{}
}

type mockNotifier struct {
	sent []sentMessage
}

func (m *mockNotifier) Send(ctx context.Context, kind, recipient string, payload map[string]interface{}) {
	m.sent = append(m.sent, sentMessage{kind: kind, recipient: recipient, payload: payload})
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

func reminderSettings() *mockSettingsRepo {
	return &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) {
			return domain.Settings{ReminderDays: 2}, nil
		},
	}
}

func TestExecute_TargetDateFromReminderDays(t *testing.T) {
	var listedDate time.Time
	repo := &mockBookingRepo{
		listRemindersDueFn: func(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
			listedDate = eventDate
			return nil, nil
		},
	}

	uc := NewUseCase(repo, reminderSettings(), &mockNotifier{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 8, 10, 18, 45, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	assert.NoError(t, err)

	want := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, listedDate)
	assert.Equal(t, want, resp.TargetDate)
	assert.Equal(t, 0, resp.Sent)
}

func TestExecute_SendsAndMarks(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:            1,
			Reference:     "QR-20260812-AAAA",
			EventDate:     time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			CustomerEmail: "card@example.com",
			PaymentMethod: domain.PaymentCard,
		},
		{
			ID:              2,
			Reference:       "QR-20260812-BBBB",
			EventDate:       time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			CustomerEmail:   "cash@example.com",
			PaymentMethod:   domain.PaymentCash,
			BalanceDueCents: 60000,
		},
	}

	var marked []int64
	repo := &mockBookingRepo{
		listRemindersDueFn: func(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
			return bookings, nil
		},
		markReminderSentFn: func(ctx context.Context, id int64) error {
			marked = append(marked, id)
			return nil
		},
	}

	notif := &mockNotifier{}
	uc := NewUseCase(repo, reminderSettings(), notif, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, []int64{1, 2}, marked)
	assert.Len(t, notif.sent, 2)

	// Only cash bookings carry the outstanding balance
	_, hasBalance := notif.sent[0].payload["balance_due_cents"]
	assert.False(t, hasBalance)
	assert.Equal(t, int64(60000), notif.sent[1].payload["balance_due_cents"])
}

func TestExecute_ContinuesWhenMarkFails(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CustomerEmail: "a@example.com"},
		{ID: 2, CustomerEmail: "b@example.com"},
	}

	repo := &mockBookingRepo{
		listRemindersDueFn: func(ctx context.Context, eventDate time.Time) ([]*domain.Booking, error) {
			return bookings, nil
		},
		markReminderSentFn: func(ctx context.Context, id int64) error {
			if id == 1 {
				return errors.New("db down")
			}
			return nil
		},
	}

	notif := &mockNotifier{}
	uc := NewUseCase(repo, reminderSettings(), notif, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	assert.NoError(t, err)

	// Both reminders went out, only the marked one counts as sent
	assert.Len(t, notif.sent, 2)
	assert.Equal(t, 1, resp.Sent)
}
