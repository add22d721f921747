package book_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// AppointmentStore is the mutable appointment collection.
type AppointmentStore interface {
	All() []*domain.Appointment
	Append(a *domain.Appointment) error
}

// SchedulePolicy validates dates and slot times against the working schedule.
type SchedulePolicy interface {
	SlotsFor(date time.Time) []types.TimeString
	Contains(date time.Time, t types.TimeString) bool
	WithinWindow(date, now time.Time) bool
}

// Catalog resolves service and staff ids.
type Catalog interface {
	StaffByID(id string) (domain.Staff, bool)
	ServiceByID(id string) (domain.Service, bool)
}

// TransactionManager serializes the commit-time availability recheck with the
// appending write, so two bookings cannot both claim the same slot.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator produces appointment ids.
type IDGenerator interface {
	NewID() string
}

// TimeProvider returns the current time; swapped out in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logging surface used by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator is the production IDGenerator. The original widget derived
// ids from the creation timestamp; random UUIDs remove the collision window
// while the duplicate-and-retry contract stays in place.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
