package bookingstore

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Booking модель записи из документного хранилища
type Booking struct {
	ID                     string  `json:"id"`
	Date                   string  `json:"date"`      // YYYY-MM-DD
	StartTime              string  `json:"startTime"` // HH:MM
	EndTime                *string `json:"endTime,omitempty"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	Status                 string  `json:"status"`
	ServiceName            string  `json:"serviceName"`
	ClientName             *string `json:"clientName,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	RejectionReason        *string `json:"rejectionReason,omitempty"`
	CreatedAt              string  `json:"createdAt,omitempty"`
	UpdatedAt              string  `json:"updatedAt,omitempty"`
}

// UpdateRequest частичное обновление записи в хранилище
// Передаются только заполненные поля
type UpdateRequest struct {
	Status                 *string `json:"status,omitempty"`
	ServiceDurationMinutes *int    `json:"serviceDurationMinutes,omitempty"`
	EndTime                *string `json:"endTime,omitempty"`
	RejectionReason        *string `json:"rejectionReason,omitempty"`
}

// ErrorResponse модель ошибки от хранилища
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель хранилища в доменную модель
// Некорректные дата или время - ошибка, а не молчаливый пропуск записи
func (b *Booking) ToDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, b.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%s has invalid date %q", ErrInvalidResponse, b.ID, b.Date)
	}

	startTime, err := types.NewTimeStringFromString(b.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%s has invalid startTime %q", ErrInvalidResponse, b.ID, b.StartTime)
	}

	var endTime *types.TimeString
	if b.EndTime != nil && *b.EndTime != "" {
		et, err := types.NewTimeStringFromString(*b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: booking id=%s has invalid endTime %q", ErrInvalidResponse, b.ID, *b.EndTime)
		}
		endTime = &et
	}

	if b.ServiceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: booking id=%s has non-positive serviceDurationMinutes %d",
			ErrInvalidResponse, b.ID, b.ServiceDurationMinutes)
	}

	booking := &domain.Booking{
		ID:                     b.ID,
		Date:                   date,
		StartTime:              startTime,
		EndTime:                endTime,
		ServiceDurationMinutes: b.ServiceDurationMinutes,
		Status:                 domain.BookingStatus(b.Status),
		ServiceName:            b.ServiceName,
		ClientName:             b.ClientName,
		Notes:                  b.Notes,
		RejectionReason:        b.RejectionReason,
	}

	if b.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, b.CreatedAt); err == nil {
			booking.CreatedAt = createdAt
		}
	}
	if b.UpdatedAt != "" {
		if updatedAt, err := time.Parse(time.RFC3339, b.UpdatedAt); err == nil {
			booking.UpdatedAt = updatedAt
		}
	}

	return booking, nil
}
