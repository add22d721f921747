package book_appointment

import "errors"

// Rejection reasons are checked in a fixed order: the first failing field
// wins. All are expected, recoverable, user-facing outcomes.
var (
	// ErrInvalidName is returned for a missing, blank or overlong client name.
	ErrInvalidName = errors.New("book_appointment: client name is required")

	// ErrInvalidContact is returned when the contact has too few digits to be
	// a full mobile number.
	ErrInvalidContact = errors.New("book_appointment: invalid contact number")

	// ErrInvalidService is returned for an unknown or missing service id.
	ErrInvalidService = errors.New("book_appointment: unknown service")

	// ErrInvalidStaff is returned for an unknown or missing staff id.
	ErrInvalidStaff = errors.New("book_appointment: unknown staff member")

	// ErrInvalidDate is returned for a missing date or one outside the
	// booking window.
	ErrInvalidDate = errors.New("book_appointment: invalid appointment date")

	// ErrInvalidTime is returned when the time is not a canonical slot for
	// the requested date.
	ErrInvalidTime = errors.New("book_appointment: invalid slot time")

	// ErrSlotConflict is returned when the slot was taken between the
	// caller's availability read and the commit. The caller must refresh
	// availability and ask the user to re-choose.
	ErrSlotConflict = errors.New("book_appointment: slot already taken")

	// ErrPersistence is returned when the appointment was committed in
	// memory but the snapshot write failed.
	ErrPersistence = errors.New("book_appointment: failed to persist appointment")

	// ErrInternal is returned for unexpected failures, including a repeated
	// id collision.
	ErrInternal = errors.New("book_appointment: internal error")
)
