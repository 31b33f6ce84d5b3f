package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	moment := time.Date(2024, 6, 12, 15, 42, 7, 999, time.UTC)
	assert.Equal(t, date(2024, 6, 12), DateOnly(moment))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 12, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, SameDay(date(2024, 6, 12), date(2024, 6, 13)))
}

func TestWeekOf(t *testing.T) {
	// Среда 2024-06-12: неделя с воскресенья 09-го по субботу 15-е
	week := WeekOf(date(2024, 6, 12))

	require.Len(t, week, DaysPerWeek)
	assert.Equal(t, date(2024, 6, 9), week[0])
	assert.Equal(t, date(2024, 6, 15), week[6])
	assert.Equal(t, time.Sunday, week[0].Weekday())
	assert.Equal(t, time.Saturday, week[6].Weekday())
}

func TestWeekOf_SundayIsAnchor(t *testing.T) {
	// Воскресенье остаётся первым днём собственной недели
	week := WeekOf(date(2024, 6, 9))

	assert.Equal(t, date(2024, 6, 9), week[0])
	assert.Equal(t, date(2024, 6, 15), week[6])
}

func TestWeekOf_ConsecutiveDays(t *testing.T) {
	week := WeekOf(date(2024, 2, 29))

	for i := 1; i < len(week); i++ {
		require.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
}

func TestMonthGrid_Shape(t *testing.T) {
	today := date(2024, 6, 12)
	cells := MonthGrid(2024, time.June, today, time.Time{}, nil)

	require.Len(t, cells, MonthGridCells)

	// Июнь 2024 начинается с субботы: первая строка добита хвостом мая
	assert.Equal(t, date(2024, 5, 26), cells[0].Date)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.False(t, cells[0].InMonth)

	// 1 июня - седьмая ячейка
	assert.Equal(t, date(2024, 6, 1), cells[6].Date)
	assert.True(t, cells[6].InMonth)

	// Последняя ячейка уходит в июль
	assert.Equal(t, date(2024, 7, 6), cells[41].Date)
	assert.False(t, cells[41].InMonth)
}

func TestMonthGrid_Flags(t *testing.T) {
	today := date(2024, 6, 12)
	selected := date(2024, 6, 20)
	withBookings := map[string]bool{
		"2024-06-12": true,
		"2024-06-20": true,
	}

	cells := MonthGrid(2024, time.June, today, selected, func(d time.Time) bool {
		return withBookings[d.Format(domain.DateFormat)]
	})

	var todayCount, selectedCount, bookingsCount int
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			assert.Equal(t, today, cell.Date)
		}
		if cell.IsSelected {
			selectedCount++
			assert.Equal(t, selected, cell.Date)
		}
		if cell.HasBookings {
			bookingsCount++
		}
	}

	assert.Equal(t, 1, todayCount)
	assert.Equal(t, 1, selectedCount)
	assert.Equal(t, 2, bookingsCount)
}

func TestMonthGrid_NoSelected(t *testing.T) {
	cells := MonthGrid(2024, time.June, date(2024, 6, 12), time.Time{}, nil)

	for _, cell := range cells {
		require.False(t, cell.IsSelected)
		require.False(t, cell.HasBookings)
	}
}

func TestNowOffset_Today(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 30, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 0, EndHour: 24}

	offset := NowOffset(now, date(2024, 6, 12), hours, domain.DayPixelsPerMinute)

	require.NotNil(t, offset)
	assert.InDelta(t, 630*domain.DayPixelsPerMinute, *offset, 0.001)
}

func TestNowOffset_NotToday(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 30, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 0, EndHour: 24}

	assert.Nil(t, NowOffset(now, date(2024, 6, 13), hours, domain.DayPixelsPerMinute))
	assert.Nil(t, NowOffset(now, date(2024, 6, 11), hours, domain.DayPixelsPerMinute))
}

func TestNowOffset_RespectsWindowStart(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 9, EndHour: 18}

	offset := NowOffset(now, date(2024, 6, 12), hours, domain.DayPixelsPerMinute)

	require.NotNil(t, offset)
	assert.InDelta(t, 60*domain.DayPixelsPerMinute, *offset, 0.001)
}

func TestLandingOffset_TodayUsesNow(t *testing.T) {
	now := time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 0, EndHour: 24}
	earliest := 600 // 10:00, должно быть проигнорировано

	got := LandingOffset(now, date(2024, 6, 12), &earliest, hours, domain.DayPixelsPerMinute)

	assert.InDelta(t, 840*domain.DayPixelsPerMinute, got, 0.001)
}

func TestLandingOffset_OtherDayUsesEarliestBooking(t *testing.T) {
	now := time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 0, EndHour: 24}
	earliest := 600 // 10:00

	got := LandingOffset(now, date(2024, 6, 13), &earliest, hours, domain.DayPixelsPerMinute)

	assert.InDelta(t, 600*domain.DayPixelsPerMinute, got, 0.001)
}

func TestLandingOffset_EmptyDayUsesDefaultHour(t *testing.T) {
	now := time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)
	hours := domain.WorkingHours{StartHour: 0, EndHour: 24}

	got := LandingOffset(now, date(2024, 6, 13), nil, hours, domain.DayPixelsPerMinute)

	assert.InDelta(t, float64(domain.DefaultLandingHour*60)*domain.DayPixelsPerMinute, got, 0.001)
}
