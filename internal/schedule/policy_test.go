package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbeariapremium/booking-service/internal/config"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

func testPolicy() *Policy {
	return NewPolicy(config.ScheduleConfig{
		OpenHour:            8,
		CloseHour:           18,
		SlotIntervalMinutes: 30,
		ClosureWeekday:      int(time.Sunday),
		ShortDayWeekday:     int(time.Saturday),
		ShortDayCloseHour:   14,
		BookingWindowDays:   30,
	})
}

func TestSlotsForRegularDay(t *testing.T) {
	p := testPolicy()
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	slots := p.SlotsFor(monday)

	require.Len(t, slots, 20)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestSlotsForShortDay(t *testing.T) {
	p := testPolicy()
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	slots := p.SlotsFor(saturday)

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("13:30"), slots[len(slots)-1])
}

func TestSlotsForClosureDay(t *testing.T) {
	p := testPolicy()
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	slots := p.SlotsFor(sunday)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestSlotsForIsDeterministic(t *testing.T) {
	p := testPolicy()
	day := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, p.SlotsFor(day), p.SlotsFor(day))
}

func TestContains(t *testing.T) {
	p := testPolicy()
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, p.Contains(monday, "08:00"))
	assert.True(t, p.Contains(monday, "14:00"))
	assert.True(t, p.Contains(monday, "17:30"))

	// The closing hour is never an offerable start.
	assert.False(t, p.Contains(monday, "18:00"))
	// Off-grid times are not slots even inside working hours.
	assert.False(t, p.Contains(monday, "08:15"))

	// Saturday closes early.
	assert.True(t, p.Contains(saturday, "13:30"))
	assert.False(t, p.Contains(saturday, "14:00"))

	assert.False(t, p.Contains(sunday, "10:00"))
}

func TestWithinWindow(t *testing.T) {
	p := testPolicy()
	now := time.Date(2024, 6, 1, 15, 42, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "today is rejected",
			date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "yesterday is rejected",
			date: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "tomorrow is accepted",
			date: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "last day of the window is accepted",
			date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "one day past the window is rejected",
			date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.WithinWindow(tt.date, now))
		})
	}
}

func TestWithinWindowComparesCalendarDays(t *testing.T) {
	p := testPolicy()

	// Late on the 1st, booking early on the 2nd: still a different calendar
	// day, so the window admits it.
	now := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, p.WithinWindow(date, now))
}

func TestWindowDays(t *testing.T) {
	assert.Equal(t, 30, testPolicy().WindowDays())
}
