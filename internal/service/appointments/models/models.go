package models

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// AppointmentView is an appointment enriched with catalog names for display.
type AppointmentView struct {
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

// AppointmentList is an ordered page of appointment views.
type AppointmentList struct {
	Appointments []AppointmentView
	Total        int // total stored, before the limit was applied
}
