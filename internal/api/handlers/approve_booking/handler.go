package approve_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	approveBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/approve_booking"
)

const (
	msgMissingBookingID = "отсутствует ID записи"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgBookingNotFound  = "запись не найдена"
	msgNotPending       = "запись не ожидает подтверждения"
	msgUpdateConflict   = "конфликт обновления, повторите запрос"
)

type Handler struct {
	usecase ApproveBookingUseCase
	logger  Logger
}

func NewHandler(usecase ApproveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/approve - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &approveBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/approve - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, approveBooking.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/approve - Booking not pending: id=%s", bookingID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, approveBooking.ErrUpdateConflict):
			h.logger.Warn("PATCH /bookings/{id}/approve - Update conflict: id=%s", bookingID)
			handlers.RespondConflict(w, msgUpdateConflict)

		case errors.Is(err, approveBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/approve - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/approve - Failed to approve: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/approve - Booking approved: id=%s, user=%d, duration=%dm",
		bookingID, userID, result.ApprovedDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
