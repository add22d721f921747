package get_availability

import (
	"time"

	"github.com/barbeariapremium/booking-service/pkg/types"
)

// Request asks for the slot availability of one staff member on one date.
type Request struct {
	StaffID string
	Date    time.Time
}

// Response lists every canonical slot for the date with its occupancy.
// Closed distinguishes "shop is closed that day" from "every slot taken":
// both have no free slots, but callers must render them differently.
type Response struct {
	StaffID string
	Date    time.Time
	Closed  bool
	Slots   []Slot
}

// Slot is one bookable start time and whether it is already occupied.
type Slot struct {
	StartTime types.TimeString
	Taken     bool
}
