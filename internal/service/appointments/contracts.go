package appointments

import (
	"github.com/barbeariapremium/booking-service/internal/domain"
)

// AppointmentStore is the store surface the service needs.
type AppointmentStore interface {
	All() []*domain.Appointment
	GetByID(id string) (*domain.Appointment, error)
	SetStatus(id string, status domain.AppointmentStatus) error
}

// Catalog resolves the denormalized names shown alongside appointments.
type Catalog interface {
	StaffByID(id string) (domain.Staff, bool)
	ServiceByID(id string) (domain.Service, bool)
}

// Logger is the leveled logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
