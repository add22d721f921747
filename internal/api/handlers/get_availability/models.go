package get_availability

import (
	"time"

	"github.com/barbeariapremium/booking-service/internal/domain"
	getAvailability "github.com/barbeariapremium/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
	Closed  bool   `json:"closed"`
	Slots   []Slot `json:"slots"`
}

// Slot is one bookable start time with its occupancy.
type Slot struct {
	StartTime string `json:"startTime"`
	Taken     bool   `json:"taken"`
}

// ToUseCaseRequest builds the use case request from URL parts.
func ToUseCaseRequest(staffID, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		StaffID: staffID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Taken:     slot.Taken,
		}
	}

	return &AvailabilityResponse{
		StaffID: resp.StaffID,
		Date:    resp.Date.Format(domain.DateFormat),
		Closed:  resp.Closed,
		Slots:   slots,
	}
}
