package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleBoard/internal/api/handlers"
	getDaySchedule "github.com/m04kA/SMC-ScheduleBoard/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidNav  = "некорректный параметр nav, ожидается prev, next или today"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (optional, YYYY-MM-DD), nav (optional, prev|next|today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getDaySchedule.Request{
		Date: query.Get("date"),
		Nav:  getDaySchedule.Navigation(query.Get("nav")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDaySchedule.ErrInvalidNavigation):
			h.logger.Warn("GET /schedule - Invalid nav: %q", req.Nav)
			handlers.RespondBadRequest(w, msgInvalidNav)

		default:
			h.logger.Error("GET /schedule - Failed to build schedule: date=%q, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result.Schedule)

	h.logger.Info("GET /schedule - Schedule built: date=%s, state=%s", response.Date, response.State)
	handlers.RespondJSON(w, http.StatusOK, response)
}
