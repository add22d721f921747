package list_appointments

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	"github.com/barbeariapremium/booking-service/internal/service/appointments/models"
)

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Total        int               `json:"total"`
}

// AppointmentItem is one appointment in the listing.
type AppointmentItem struct {
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

// FromServiceList converts the service model into the HTTP response.
func FromServiceList(list *models.AppointmentList) *AppointmentListResponse {
	items := make([]AppointmentItem, len(list.Appointments))
	for i, a := range list.Appointments {
		items[i] = AppointmentItem{
			ID:            a.ID,
			ClientName:    a.ClientName,
			ClientContact: a.ClientContact,
			ServiceID:     a.ServiceID,
			ServiceName:   a.ServiceName,
			ServicePrice:  a.ServicePrice,
			StaffID:       a.StaffID,
			StaffName:     a.StaffName,
			Date:          a.Date.Format(domain.DateFormat),
			Time:          a.Time.String(),
			Status:        string(a.Status),
			CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: items,
		Total:        list.Total,
	}
}
