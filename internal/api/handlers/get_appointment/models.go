package get_appointment

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string  `json:"id"`
	ClientName    string  `json:"clientName"`
	ClientContact string  `json:"clientContact"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	StaffID       string  `json:"staffId"`
	StaffName     string  `json:"staffName"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// FromServiceView converts the service model into the HTTP response.
func FromServiceView(view *models.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            view.ID,
		ClientName:    view.ClientName,
		ClientContact: view.ClientContact,
		ServiceID:     view.ServiceID,
		ServiceName:   view.ServiceName,
		ServicePrice:  view.ServicePrice,
		StaffID:       view.StaffID,
		StaffName:     view.StaffName,
		Date:          view.Date.Format(domain.DateFormat),
		Time:          view.Time.String(),
		Status:        string(view.Status),
		CreatedAt:     view.CreatedAt.Format(time.RFC3339),
	}
}
