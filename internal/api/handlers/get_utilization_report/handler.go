package get_utilization_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	utilizationReport "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_utilization_report"
)

const (
	msgInvalidFrom   = "некорректная дата начала периода, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректная дата конца периода, ожидается YYYY-MM-DD"
	msgInvalidRange  = "конец периода раньше начала"
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	usecase UtilizationReportUseCase
	logger  Logger
}

func NewHandler(usecase UtilizationReportUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/utilization
// Query params: from (обязательный), to (опционально, по умолчанию = from)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule/utilization - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	fromStr := r.URL.Query().Get("from")
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /schedule/utilization - Invalid from %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	// Отчёт за один день - частый случай, to можно не указывать
	to := from
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err = time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /schedule/utilization - Invalid to %q: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
	}

	result, err := h.usecase.Execute(r.Context(), &utilizationReport.Request{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, utilizationReport.ErrInvalidDateRange):
			h.logger.Warn("GET /schedule/utilization - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, utilizationReport.ErrInvalidInput):
			h.logger.Warn("GET /schedule/utilization - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /schedule/utilization - Failed to build report: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/utilization - Report built: user=%d, bookings=%d, waste=%dm",
		userID, result.Report.BookingsCount, result.Report.TotalWasteMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
