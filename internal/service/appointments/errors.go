package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the id matches no appointment.
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrPersistence is returned when the status change was applied in
	// memory but the snapshot write failed.
	ErrPersistence = errors.New("appointments.service: failed to persist change")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("appointments.service: internal error")
)
