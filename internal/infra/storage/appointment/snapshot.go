package appointment

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// snapshot is the persisted layout: one named record holding the full ordered
// collection. Field names match the original widget's localStorage format.
type snapshot struct {
	Appointments []appointmentRecord `json:"appointments"`
}

type appointmentRecord struct {
	ID            string `json:"id"`
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	ServiceID     string `json:"serviceId"`
	StaffID       string `json:"staffId"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"` // RFC 3339
}

func toRecord(a *domain.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:            a.ID,
		ClientName:    a.ClientName,
		ClientContact: a.ClientContact,
		ServiceID:     a.ServiceID,
		StaffID:       a.StaffID,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

func fromRecord(rec appointmentRecord) (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, rec.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(rec.Time)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		ID:            rec.ID,
		ClientName:    rec.ClientName,
		ClientContact: rec.ClientContact,
		ServiceID:     rec.ServiceID,
		StaffID:       rec.StaffID,
		Date:          date,
		Time:          slot,
		Status:        domain.AppointmentStatus(rec.Status),
		CreatedAt:     createdAt,
	}, nil
}
