package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly_StripsTimeOfDay(t *testing.T) {
	got := DateOnly(time.Date(2026, 7, 4, 18, 30, 45, 123, time.UTC))
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDateOnly_UsesCalendarComponents(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	// 23:00 local is already the next day in UTC, but the calendar date wins
	got := DateOnly(time.Date(2026, 7, 4, 23, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 3, DaysUntil(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -2, DaysUntil(time.Date(2026, 6, 29, 23, 59, 0, 0, time.UTC), now))
}

func TestIsDateBookable_PastDate(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 7, 9, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsDateBookable(past, now, nil, 3, 0))
}

func TestIsDateBookable_MinNoticeBoundary(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)

	tooSoon := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateBookable(tooSoon, now, nil, 3, 3))

	justEnough := time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDateBookable(justEnough, now, nil, 3, 3))
}

func TestIsDateBookable_DailyCap(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	counts := map[string]int{"2026-07-20": 2}
	assert.True(t, IsDateBookable(date, now, counts, 3, 3))

	counts["2026-07-20"] = 3
	assert.False(t, IsDateBookable(date, now, counts, 3, 3))
}
