package calendar

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DaysPerWeek количество колонок недельного вида
const DaysPerWeek = 7

// MonthGridRows количество строк месячной сетки
// Сетка всегда полная: 6 строк по 7 ячеек, с добивкой днями соседних месяцев
const MonthGridRows = 6

// MonthGridCells общее количество ячеек месячной сетки
const MonthGridCells = MonthGridRows * DaysPerWeek

// MonthCell ячейка месячной сетки
type MonthCell struct {
	Date        time.Time
	InMonth     bool // принадлежит отображаемому месяцу
	IsToday     bool
	IsSelected  bool
	HasBookings bool // есть хотя бы одна запись на эту дату
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WeekOf возвращает 7 последовательных дат недели, содержащей date
// Первый элемент - ближайшее воскресенье, не позднее date
func WeekOf(date time.Time) []time.Time {
	sunday := DateOnly(date).AddDate(0, 0, -int(date.Weekday()))

	week := make([]time.Time, DaysPerWeek)
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// MonthGrid строит полную месячную сетку из 42 ячеек (6 строк по 7 дней)
// Первая строка добивается хвостом предыдущего месяца до воскресенья,
// последняя - началом следующего месяца
//
// hasBookings может быть nil, тогда флаг HasBookings не выставляется.
// selected может быть нулевой датой, тогда флаг IsSelected не выставляется
func MonthGrid(
	year int,
	month time.Month,
	today time.Time,
	selected time.Time,
	hasBookings func(date time.Time) bool,
) []MonthCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())

	// Сдвигаемся назад до воскресенья
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	cells := make([]MonthCell, MonthGridCells)
	for i := range cells {
		date := gridStart.AddDate(0, 0, i)

		cell := MonthCell{
			Date:       date,
			InMonth:    date.Month() == month && date.Year() == year,
			IsToday:    SameDay(date, today),
			IsSelected: !selected.IsZero() && SameDay(date, selected),
		}
		if hasBookings != nil {
			cell.HasBookings = hasBookings(date)
		}

		cells[i] = cell
	}

	return cells
}

// NowOffset возвращает вертикальное смещение маркера текущего времени
// Возвращает nil, когда отображаемая дата - не сегодня. Пересчёт по таймеру
// (раз в 60 секунд) - ответственность вызывающей стороны: навигатор сам
// таймеров не держит
func NowOffset(
	now time.Time,
	displayed time.Time,
	hours domain.WorkingHours,
	pixelsPerMinute float64,
) *float64 {
	if !SameDay(now, displayed) {
		return nil
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	offset := float64(nowMinutes-hours.StartMinutes()) * pixelsPerMinute
	return &offset
}

// LandingOffset возвращает стартовую позицию прокрутки при открытии даты
// Политика:
//  1. сегодня - позиционируемся на текущее время;
//  2. есть записи - на начало самой ранней;
//  3. иначе - на час по умолчанию (09:00).
//
// Применяется один раз при смене даты, не переприменяется непрерывно
func LandingOffset(
	now time.Time,
	displayed time.Time,
	earliestStartMinutes *int,
	hours domain.WorkingHours,
	pixelsPerMinute float64,
) float64 {
	if offset := NowOffset(now, displayed, hours, pixelsPerMinute); offset != nil {
		return *offset
	}

	if earliestStartMinutes != nil {
		return float64(*earliestStartMinutes-hours.StartMinutes()) * pixelsPerMinute
	}

	return float64(domain.DefaultLandingHour*60-hours.StartMinutes()) * pixelsPerMinute
}
