package list_appointments

import (
	"context"

	"github.com/barbeariapremium/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, limit int) (*models.AppointmentList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
