package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 15
	DefaultWorkdayStartHour    = 0
	DefaultWorkdayEndHour      = 24
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	MaxNotesLength           = 500
	MaxRejectionReasonLength = 500
)

// Timeline rendering constants
const (
	// DayPixelsPerMinute вертикальный масштаб дневного таймлайна
	DayPixelsPerMinute = 3.2

	// WeekPixelsPerMinute масштаб недельного вида (0.4x от дневного)
	WeekPixelsPerMinute = DayPixelsPerMinute * 0.4

	// BlockPaddingPixels зазор между соседними блоками
	BlockPaddingPixels = 2.0

	// MinBlockHeightPixels минимальная высота блока, чтобы короткие записи
	// оставались читаемыми и кликабельными при любой плотности
	MinBlockHeightPixels = 18.0

	// DefaultLandingHour час, на который позиционируется пустой день
	DefaultLandingHour = 9
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих сетку расписания
// Используется для фильтрации при раскладке и в отчёте утилизации
var InactiveStatuses = []BookingStatus{
	StatusRejected,
}

// ActiveStatuses список статусов, занимающих сетку расписания
// Ожидающие подтверждения записи занимают сетку наравне с подтверждёнными
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
