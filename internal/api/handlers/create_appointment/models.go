package create_appointment

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	bookAppointment "github.com/barbeariapremium/booking-service/internal/usecase/book_appointment"
	"github.com/barbeariapremium/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	ServiceID     string `json:"serviceId"`
	StaffID       string `json:"staffId"`
	Date          string `json:"date"` // "2024-06-10"
	Time          string `json:"time"` // "09:00"
}

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
	WhatsAppURL   string  `json:"whatsappUrl"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing date and time.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var slot types.TimeString
	if r.Time != "" {
		parsed, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		slot = parsed
	}

	return &bookAppointment.Request{
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		ServiceID:     r.ServiceID,
		StaffID:       r.StaffID,
		Date:          date,
		Time:          slot,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *bookAppointment.Response, whatsappURL string) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		ClientName:    resp.ClientName,
		ClientContact: resp.ClientContact,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		StaffID:       resp.StaffID,
		StaffName:     resp.StaffName,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		Status:        string(resp.Status),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		WhatsAppURL:   whatsappURL,
	}
}
