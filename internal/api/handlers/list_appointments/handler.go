package list_appointments

import (
	"net/http"
	"strconv"

	"github.com/barbeariapremium/booking-service/internal/api/handlers"
)

const (
	msgInvalidLimit = "parâmetro limit inválido"

	// defaultLimit matches the original widget, which showed the last 10.
	defaultLimit = 10
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /appointments - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed %d of %d appointments", len(result.Appointments), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}
