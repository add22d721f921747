package get_availability

import "errors"

var (
	// ErrStaffNotFound is returned when the staff id is not in the catalog.
	ErrStaffNotFound = errors.New("get_availability: staff member not found")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
