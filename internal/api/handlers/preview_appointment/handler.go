package preview_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers"
	previewAppointment "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/preview_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается HH:MM"
)

type Handler struct {
	useCase PreviewAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase PreviewAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, previewAppointment.ErrInvalidInput) {
			h.logger.Warn("POST /appointments/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartTime)
			return
		}
		h.logger.Error("POST /appointments/preview - Failed to preview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
