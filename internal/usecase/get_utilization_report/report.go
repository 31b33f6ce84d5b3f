package get_utilization_report

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// buildReport агрегирует утилизацию сетки по списку записей
//
// Чистая read-only функция: записи не мутируются, порядок дат в отчёте -
// порядок первого появления во входном списке. Отклонённые записи сетку
// не занимают и в отчёт не входят; ожидающие учитываются наравне с
// подтверждёнными
func buildReport(bookings []*domain.Booking, cfg domain.ScheduleConfig) domain.UtilizationReport {
	report := domain.UtilizationReport{
		Dates:          []string{},
		BookingsByDate: map[string][]domain.UtilizationRecord{},
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		booked := booking.BookedDurationMinutes(cfg.SlotDurationMinutes)

		record := domain.UtilizationRecord{
			Date:                   booking.Date.Format(domain.DateFormat),
			BookingID:              booking.ID,
			ServiceDurationMinutes: booking.ServiceDurationMinutes,
			BookedDurationMinutes:  booked,
			SlotsUsed:              domain.SlotsNeeded(booking.ServiceDurationMinutes, cfg.SlotDurationMinutes),
			WasteMinutes:           booked - booking.ServiceDurationMinutes,
		}

		if _, seen := report.BookingsByDate[record.Date]; !seen {
			report.Dates = append(report.Dates, record.Date)
		}
		report.BookingsByDate[record.Date] = append(report.BookingsByDate[record.Date], record)

		report.TotalServiceDurationMinutes += record.ServiceDurationMinutes
		report.TotalBookedDurationMinutes += record.BookedDurationMinutes
		report.TotalWasteMinutes += record.WasteMinutes
		report.BookingsCount++
	}

	// Защита от деления на ноль: пустая выборка даёт нули, а не NaN
	if report.TotalBookedDurationMinutes > 0 {
		report.WastePercentage = float64(report.TotalWasteMinutes) / float64(report.TotalBookedDurationMinutes) * 100
	}
	if report.BookingsCount > 0 {
		report.AverageWastePerBooking = float64(report.TotalWasteMinutes) / float64(report.BookingsCount)
	}

	return report
}
