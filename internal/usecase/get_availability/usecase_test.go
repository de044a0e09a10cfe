package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quesarica/QR-BookingService/internal/domain"
)

type mockBookingRepo struct {
	countActiveByDateFn func(ctx context.Context, from, to time.Time) (map[string]int, error)
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

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockSettingsRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 1999, Month: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MonthCalendar(t *testing.T) {
	var queriedFrom, queriedTo time.Time
	repo := &mockBookingRepo{
		countActiveByDateFn: func(ctx context.Context, from, to time.Time) (map[string]int, error) {
			queriedFrom, queriedTo = from, to
			return map[string]int{"2026-07-20": 3, "2026-07-21": 1}, nil
		},
	}
	settings := &mockSettingsRepo{
		getFn: func(ctx context.Context) (domain.Settings, error) {
			return domain.Settings{MaxEventsPerDay: 3, MinNoticeDays: 3}, nil
		},
	}

	uc := NewUseCase(repo, settings, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 7, 10, 15, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 7})
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), queriedFrom)
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), queriedTo)

	assert.Equal(t, "2026-07", resp.Month)
	assert.Equal(t, 3, resp.MaxPerDay)
	assert.Equal(t, 3, resp.MinNoticeDays)
	assert.Len(t, resp.Days, 31)

	byDate := make(map[string]DayAvailability, len(resp.Days))
	for _, d := range resp.Days {
		byDate[d.Date] = d
	}

	// Past days and days inside the notice window are not bookable
	assert.False(t, byDate["2026-07-05"].Bookable)
	assert.False(t, byDate["2026-07-12"].Bookable)
	assert.True(t, byDate["2026-07-13"].Bookable)

	// Day at the cap is full, a partially booked day is open
	assert.Equal(t, 3, byDate["2026-07-20"].Booked)
	assert.False(t, byDate["2026-07-20"].Bookable)
	assert.Equal(t, 1, byDate["2026-07-21"].Booked)
	assert.True(t, byDate["2026-07-21"].Bookable)
}
