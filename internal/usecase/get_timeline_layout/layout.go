package get_timeline_layout

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// blockGeometry вычисляет вертикальную геометрию одного блока
//
// Правило перехода через полночь: если конец записи численно раньше начала,
// для раскладки запись считается идущей до конца рабочего окна дня. Это
// осознанная политика обрезки (запись концептуально принадлежит своему дню),
// а не исправление данных - отчёт утилизации видит исходную длительность
func blockGeometry(
	booking *domain.Booking,
	cfg domain.ScheduleConfig,
	pixelsPerMinute float64,
) (topOffset, heightPixels float64, err error) {
	startMinutes, err := booking.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}

	endTime, err := booking.EffectiveEndTime(cfg.SlotDurationMinutes)
	if err != nil {
		return 0, 0, err
	}

	rawEndMinutes, err := endTime.Minutes()
	if err != nil {
		return 0, 0, err
	}

	dayEndMinutes := cfg.WorkingHours.EndMinutes()

	// Переход через полночь: обрезаем по концу рабочего окна
	effectiveEndMinutes := rawEndMinutes
	if rawEndMinutes < startMinutes {
		effectiveEndMinutes = dayEndMinutes
	}
	if effectiveEndMinutes > dayEndMinutes {
		effectiveEndMinutes = dayEndMinutes
	}

	topOffset = float64(startMinutes-cfg.WorkingHours.StartMinutes())*pixelsPerMinute + domain.BlockPaddingPixels

	heightPixels = float64(effectiveEndMinutes-startMinutes)*pixelsPerMinute - domain.BlockPaddingPixels
	if heightPixels < domain.MinBlockHeightPixels {
		heightPixels = domain.MinBlockHeightPixels
	}

	return topOffset, heightPixels, nil
}

// buildDayBlocks строит блоки раскладки для записей одного дня
// Отклонённые записи сетку не занимают и блоков не получают
func buildDayBlocks(
	dayBookings []*domain.Booking,
	cfg domain.ScheduleConfig,
	pixelsPerMinute float64,
	now time.Time,
) ([]domain.LayoutBlock, error) {
	blocks := make([]domain.LayoutBlock, 0, len(dayBookings))

	for _, booking := range dayBookings {
		if !booking.IsActive() {
			continue
		}

		top, height, err := blockGeometry(booking, cfg, pixelsPerMinute)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, domain.LayoutBlock{
			BookingID:    booking.ID,
			TopOffset:    top,
			HeightPixels: height,
			Pending:      booking.IsPending(),
			Past:         booking.IsPast(now, cfg.SlotDurationMinutes),
		})
	}

	return blocks, nil
}

// earliestStartMinutes возвращает минуту начала самой ранней активной записи дня
// nil, если активных записей нет
func earliestStartMinutes(dayBookings []*domain.Booking) *int {
	var earliest *int

	for _, booking := range dayBookings {
		if !booking.IsActive() {
			continue
		}

		minutes, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}

		if earliest == nil || minutes < *earliest {
			m := minutes
			earliest = &m
		}
	}

	return earliest
}
