package create_appointment

import (
	"context"

	"github.com/barbeariapremium/booking-service/internal/notify"
	bookAppointment "github.com/barbeariapremium/booking-service/internal/usecase/book_appointment"
)

type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// ConfirmationBuilder produces the pre-filled messaging link returned to the
// caller after a successful booking.
type ConfirmationBuilder interface {
	ConfirmationLink(a notify.Appointment) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
