package get_day_layout

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/usecase/get_timeline_layout"
)

const (
	msgInvalidDate = "некорректная дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	usecase TimelineLayoutUseCase
	logger  Logger
}

func NewHandler(usecase TimelineLayoutUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/layout/day
// Query params: date (обязательный, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/layout/day - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &get_timeline_layout.Request{
		Mode: get_timeline_layout.ModeDay,
		Date: date,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_timeline_layout.ErrInvalidInput),
			errors.Is(err, get_timeline_layout.ErrInvalidMode):
			h.logger.Warn("GET /schedule/layout/day - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedule/layout/day - Failed to build layout: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/layout/day - Layout built: date=%s, blocks=%d",
		dateStr, len(result.Days[0].Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
