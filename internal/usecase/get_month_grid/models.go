package get_month_grid

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/calendar"
)

// Request модель запроса месячной сетки
type Request struct {
	Year  int
	Month time.Month

	// Selected выбранная в консоли дата (опционально)
	Selected *time.Time
}

// Response модель ответа с месячной сеткой
type Response struct {
	Year  int
	Month time.Month

	// Cells всегда 42 ячейки: 6 строк по 7 дней
	Cells []calendar.MonthCell
}
