package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
	bookingRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/booking"
	"github.com/quesarica/QR-BookingService/internal/service/bookings/models"
	"github.com/quesarica/QR-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Booking, error)
	getByTokenFn   func(ctx context.Context, token string) (*domain.Booking, error)
	listFn         func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.BookingStatus) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	return m.getByTokenFn(ctx, token)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn(ctx, filter)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
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

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            3,
		Reference:     "QR-20260901-CAFE",
		EventDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CustomerEmail: "guest@example.com",
		Status:        status,
	}
}

func TestConfirm_PendingBooking(t *testing.T) {
	var updatedStatus domain.BookingStatus
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusPending), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.BookingStatus) error {
			updatedStatus = status
			return nil
		},
	}

	notif := &mockNotifier{}
	svc := NewService(repo, &mockSettingsRepo{}, notif, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 3)
	assert.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, updatedStatus)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Len(t, notif.sent, 1)
	assert.Equal(t, "guest@example.com", notif.sent[0].recipient)
}

func TestConfirm_NotPending(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusConfirmed), nil
		},
	}

	svc := NewService(repo, &mockSettingsRepo{}, &mockNotifier{}, nopLogger{})

	_, err := svc.Confirm(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestDelete_RequiresCancelledBooking(t *testing.T) {
	deleted := false
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusConfirmed), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	svc := NewService(repo, &mockSettingsRepo{}, &mockNotifier{}, nopLogger{})

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotCancelled)
	assert.False(t, deleted)
}

func TestDelete_CancelledBooking(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return sampleBooking(domain.StatusCancelled), nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}

	svc := NewService(repo, &mockSettingsRepo{}, &mockNotifier{}, nopLogger{})

	assert.NoError(t, svc.Delete(context.Background(), 3))
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	svc := NewService(repo, &mockSettingsRepo{}, &mockNotifier{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	var gotFilter domain.BookingsFilter
	repo := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return []*domain.Booking{sampleBooking(domain.StatusConfirmed)}, nil
		},
	}

	svc := NewService(repo, &mockSettingsRepo{}, &mockNotifier{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("confirmed"),
	})
	assert.NoError(t, err)

	assert.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *gotFilter.Status)
	assert.Len(t, resp.Bookings, 1)
}
