package book_appointment

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// Request is a booking attempt as it arrives from the UI layer.
type Request struct {
	ClientName    string
	ClientContact string
	ServiceID     string
	StaffID       string
	Date          time.Time
	Time          types.TimeString
}

// Response is the committed appointment plus the catalog data the caller
// needs to render a confirmation.
type Response struct {
	ID            string
	ClientName    string
	ClientContact string
	ServiceID     string
	ServiceName   string
	ServicePrice  float64
	StaffID       string
	StaffName     string
	Date          time.Time
	Time          types.TimeString
	Status        domain.AppointmentStatus
	CreatedAt     time.Time
}
