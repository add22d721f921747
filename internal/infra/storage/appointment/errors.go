package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment has the given id.
	ErrAppointmentNotFound = errors.New("appointment.store: appointment not found")

	// ErrDuplicateID is returned when appending an appointment whose id is
	// already present.
	ErrDuplicateID = errors.New("appointment.store: duplicate appointment id")

	// ErrInvalidStatus is returned when setting a status outside the known set.
	ErrInvalidStatus = errors.New("appointment.store: invalid appointment status")

	// ErrPersist is returned when writing the snapshot file fails. The
	// in-memory mutation is kept; see the store documentation.
	ErrPersist = errors.New("appointment.store: failed to persist snapshot")

	// ErrLoad is returned when the snapshot file exists but cannot be read
	// or decoded.
	ErrLoad = errors.New("appointment.store: failed to load snapshot")
)
