package get_availability

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// AppointmentStore is the read side of the appointment collection.
type AppointmentStore interface {
	All() []*domain.Appointment
}

// SchedulePolicy generates the canonical slot set for a date.
type SchedulePolicy interface {
	SlotsFor(date time.Time) []types.TimeString
}

// StaffCatalog resolves staff ids.
type StaffCatalog interface {
	StaffByID(id string) (domain.Staff, bool)
}

// Logger is the leveled logging surface used by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
