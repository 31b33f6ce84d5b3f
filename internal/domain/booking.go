package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// Booking represents a client appointment in the system
//
// All times are naive local wall-clock values: Date carries the calendar day,
// StartTime/EndTime carry "HH:MM" within that day. No time-zone conversion
// is performed anywhere in the scheduling core.
type Booking struct {
	ID        string
	Date      time.Time
	StartTime types.TimeString

	// EndTime is optional. When nil it is derived as StartTime plus the
	// grid-aligned booked duration (see EffectiveEndTime).
	EndTime *types.TimeString

	// ServiceDurationMinutes is the true requested duration. It may not be
	// aligned to the slot grid; the displayed appointment always shows the
	// booked (grid-aligned) duration instead.
	ServiceDurationMinutes int

	Status BookingStatus

	// Denormalized data for display
	ServiceName string
	ClientName  *string
	Notes       *string

	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is awaiting approval
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsActive returns true if the booking occupies the schedule grid
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected
}

// CanBeApproved returns true if the booking can transition to confirmed
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending
}

// CanBeRejected returns true if the booking can transition to rejected
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookedDurationMinutes returns the grid-aligned duration the booking
// occupies: the service duration rounded up to whole slots
func (b *Booking) BookedDurationMinutes(slotDurationMinutes int) int {
	return BookedDuration(b.ServiceDurationMinutes, slotDurationMinutes)
}

// EffectiveEndTime returns the explicit end time when present, otherwise
// derives it as StartTime plus the booked (grid-aligned) duration
func (b *Booking) EffectiveEndTime(slotDurationMinutes int) (types.TimeString, error) {
	if b.EndTime != nil && !b.EndTime.IsZero() {
		return *b.EndTime, nil
	}
	return b.StartTime.AddMinutes(b.BookedDurationMinutes(slotDurationMinutes))
}

// WrapsMidnight returns true if the booking's end time is numerically earlier
// than its start time, meaning the session crosses into the next day
func (b *Booking) WrapsMidnight(slotDurationMinutes int) (bool, error) {
	end, err := b.EffectiveEndTime(slotDurationMinutes)
	if err != nil {
		return false, err
	}
	return end.IsBefore(b.StartTime), nil
}

// IsPast reports whether the booking has already finished relative to now,
// comparing (Date, end time) against the current wall clock
func (b *Booking) IsPast(now time.Time, slotDurationMinutes int) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := now.Date()

	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, now.Location())
	nowDate := time.Date(y2, m2, d2, 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowDate) {
		return true
	}
	if dateOnly.After(nowDate) {
		return false
	}

	end, err := b.EffectiveEndTime(slotDurationMinutes)
	if err != nil {
		return false
	}

	// Записи через полночь на сегодняшней дате ещё не завершились
	if end.IsBefore(b.StartTime) {
		return false
	}

	return end.IsBefore(types.NewTimeString(now))
}

// BookingsFilter фильтр для выборки записей за период
type BookingsFilter struct {
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отклонённые записи
}
