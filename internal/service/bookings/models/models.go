package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// RejectBookingRequest запрос на отклонение записи
type RejectBookingRequest struct {
	BookingID       string `json:"bookingId"`
	UserID          int64  `json:"userId"`
	RejectionReason string `json:"rejectionReason"`
}

// BookingResponse представление записи для API
//
// endTime и bookedDurationMinutes - производные значения: отображаемая запись
// всегда показывает выровненную по сетке длительность, а не сырую запрошенную
type BookingResponse struct {
	ID                     string  `json:"id"`
	Date                   string  `json:"date"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	BookedDurationMinutes  int     `json:"bookedDurationMinutes"`
	SlotsUsed              int     `json:"slotsUsed"`
	Status                 string  `json:"status"`
	IsPending              bool    `json:"isPending"`
	IsPast                 bool    `json:"isPast"`
	ServiceName            string  `json:"serviceName"`
	ClientName             *string `json:"clientName,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	RejectionReason        *string `json:"rejectionReason,omitempty"`
}

// FromDomainBooking конвертирует доменную запись в API представление
// Производные поля считаются от переданной конфигурации сетки и текущего времени
func FromDomainBooking(b *domain.Booking, cfg domain.ScheduleConfig, now time.Time) (*BookingResponse, error) {
	endTime, err := b.EffectiveEndTime(cfg.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	return &BookingResponse{
		ID:                     b.ID,
		Date:                   b.Date.Format(domain.DateFormat),
		StartTime:              b.StartTime.String(),
		EndTime:                endTime.String(),
		ServiceDurationMinutes: b.ServiceDurationMinutes,
		BookedDurationMinutes:  b.BookedDurationMinutes(cfg.SlotDurationMinutes),
		SlotsUsed:              domain.SlotsNeeded(b.ServiceDurationMinutes, cfg.SlotDurationMinutes),
		Status:                 string(b.Status),
		IsPending:              b.IsPending(),
		IsPast:                 b.IsPast(now, cfg.SlotDurationMinutes),
		ServiceName:            b.ServiceName,
		ClientName:             b.ClientName,
		Notes:                  b.Notes,
		RejectionReason:        b.RejectionReason,
	}, nil
}
