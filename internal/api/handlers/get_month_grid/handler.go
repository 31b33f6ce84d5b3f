package get_month_grid

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	monthGrid "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_grid"
)

const (
	msgInvalidYear     = "некорректный год"
	msgInvalidMonth    = "некорректный месяц"
	msgInvalidSelected = "некорректная выбранная дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	usecase MonthGridUseCase
	logger  Logger
}

func NewHandler(usecase MonthGridUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/month
// Query params: year, month (обязательные), selected (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /schedule/month - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /schedule/month - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	req := &monthGrid.Request{
		Year:  year,
		Month: time.Month(month),
	}

	if selectedStr := r.URL.Query().Get("selected"); selectedStr != "" {
		selected, err := time.Parse(domain.DateFormat, selectedStr)
		if err != nil {
			h.logger.Warn("GET /schedule/month - Invalid selected date %q: %v", selectedStr, err)
			handlers.RespondBadRequest(w, msgInvalidSelected)
			return
		}
		req.Selected = &selected
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, monthGrid.ErrInvalidInput):
			h.logger.Warn("GET /schedule/month - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedule/month - Failed to build grid: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/month - Grid built: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
