package domain

import (
	"time"

	"github.com/barbeariapremium/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked slot for a staff member.
// Date carries only the calendar day; the slot start lives in Time.
type Appointment struct {
	ID            string
	ClientName    string
	ClientContact string
	ServiceID     string
	StaffID       string
	Date          time.Time
	Time          types.TimeString
	Status        AppointmentStatus
	CreatedAt     time.Time
}

// IsActive reports whether the appointment still occupies its slot.
// Cancelled appointments never block a re-booking.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesSlot reports whether the appointment holds the given (date, staff)
// slot. Date comparison is by calendar day.
func (a *Appointment) OccupiesSlot(date time.Time, staffID string, t types.TimeString) bool {
	return a.IsActive() && a.StaffID == staffID && a.Time == t && SameDay(a.Date, date)
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
