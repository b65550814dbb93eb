package save_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers"
	saveAppointment "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/save_appointment"
	"github.com/m04kA/SMC-ScheduleBoard/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingID          = "ID записи обязателен"
	msgInvalidData        = "некорректные данные записи"
	msgNotFound           = "запись не найдена"
)

type Handler struct {
	useCase SaveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase SaveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Create POST /api/v1/appointments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req AppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.save(w, r, "POST /appointments", req.ToUseCaseRequest(nil))
}

// Update PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PUT /appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req AppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.save(w, r, "PUT /appointments/{id}", req.ToUseCaseRequest(&appointmentID))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, route string, req *saveAppointment.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, saveAppointment.ErrInvalidInput):
			h.logger.Warn("%s - Invalid data: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, saveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("%s - Appointment not found: id=%v", route, ptr.Deref(req.AppointmentID, ""))
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to save appointment: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("%s - Appointment saved: id=%s", route, ptr.Deref(result.Payload.ID, ""))
	handlers.RespondJSON(w, status, result.Payload)
}
