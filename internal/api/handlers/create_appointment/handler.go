package create_appointment

import (
	"errors"
	"net/http"

	"github.com/barbeariapremium/booking-service/internal/api/handlers"
	"github.com/barbeariapremium/booking-service/internal/notify"
	bookAppointment "github.com/barbeariapremium/booking-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateFormat  = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidName        = "por favor, informe seu nome"
	msgInvalidContact     = "por favor, informe um número de WhatsApp válido"
	msgInvalidService     = "por favor, selecione um serviço válido"
	msgInvalidStaff       = "por favor, selecione um barbeiro válido"
	msgInvalidDate        = "por favor, selecione uma data válida"
	msgInvalidTime        = "por favor, selecione um horário válido"
	msgSlotConflict       = "este horário já foi ocupado, por favor escolha outro"
	msgPersistFailed      = "agendamento criado, mas houve falha ao gravar os dados"
)

type Handler struct {
	useCase      BookAppointmentUseCase
	confirmation ConfirmationBuilder
	logger       Logger
}

func NewHandler(useCase BookAppointmentUseCase, confirmation ConfirmationBuilder, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		confirmation: confirmation,
		logger:       logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrInvalidName):
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, bookAppointment.ErrInvalidContact):
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, bookAppointment.ErrInvalidService):
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, bookAppointment.ErrInvalidStaff):
			handlers.RespondBadRequest(w, msgInvalidStaff)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookAppointment.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, bookAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: staff_id=%s, date=%s, time=%s",
				req.StaffID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, bookAppointment.ErrPersistence):
			// The appointment exists in memory; only the snapshot write failed.
			h.logger.Error("POST /appointments - Persist failed: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistFailed)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: staff_id=%s, error=%v",
				req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	whatsappURL := h.confirmation.ConfirmationLink(notify.Appointment{
		ClientName:   result.ClientName,
		ClientPhone:  result.ClientContact,
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		StaffName:    result.StaffName,
		Date:         result.Date,
		Time:         result.Time,
	})

	// Reminder delivery is out of scope; only the intent is recorded.
	h.logger.Info("POST /appointments - Reminder scheduled for %s on %s at %s",
		result.ClientName, result.Date.Format("2006-01-02"), result.Time)

	h.logger.Info("POST /appointments - Appointment created: id=%s, staff_id=%s", result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, whatsappURL))
}
