package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccupiesSlot(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	a := &Appointment{
		StaffID: "carlos",
		Date:    date,
		Time:    "09:00",
		Status:  StatusConfirmed,
	}

	assert.True(t, a.OccupiesSlot(date, "carlos", "09:00"))

	// Time-of-day on the query date is irrelevant.
	assert.True(t, a.OccupiesSlot(date.Add(13*time.Hour), "carlos", "09:00"))

	assert.False(t, a.OccupiesSlot(date, "carlos", "09:30"))
	assert.False(t, a.OccupiesSlot(date, "rafael", "09:00"))
	assert.False(t, a.OccupiesSlot(date.AddDate(0, 0, 1), "carlos", "09:00"))

	a.Status = StatusCancelled
	assert.False(t, a.OccupiesSlot(date, "carlos", "09:00"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("rescheduled"))
	assert.False(t, ValidStatus(""))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 6, 10, 15, 42, 7, 123, time.UTC)

	got := DateOnly(ts)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
