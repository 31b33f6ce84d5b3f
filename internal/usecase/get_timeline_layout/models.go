package get_timeline_layout

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Mode режим таймлайна
type Mode string

const (
	// ModeDay одна колонка на выбранную дату, полный масштаб
	ModeDay Mode = "day"

	// ModeWeek 7 колонок недели с воскресенья, сжатый масштаб
	ModeWeek Mode = "week"
)

// Request модель запроса на раскладку таймлайна
type Request struct {
	Mode Mode      // Режим отображения (day | week)
	Date time.Time // Дата, вокруг которой строится вид
}

// Response модель ответа с раскладкой
type Response struct {
	Mode Mode

	// PixelsPerMinute масштаб, по которому считалась геометрия блоков
	PixelsPerMinute float64

	// Days колонки вида: одна для day, семь для week
	Days []DayColumn

	// LandingOffsetPixels стартовая позиция прокрутки для запрошенной даты
	// Применяется один раз при смене даты
	LandingOffsetPixels float64
}

// DayColumn колонка одного дня на таймлайне
type DayColumn struct {
	Date    time.Time
	IsToday bool

	// Blocks геометрия записей дня. Разрешение пересечений не выполняется:
	// пересекающиеся записи дадут визуально пересекающиеся блоки
	Blocks []domain.LayoutBlock

	// NowOffsetPixels смещение маркера текущего времени
	// nil для всех колонок, кроме сегодняшней
	NowOffsetPixels *float64
}
