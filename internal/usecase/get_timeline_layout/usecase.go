package get_timeline_layout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/calendar"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	settingsClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
)

// UseCase use case построения раскладки таймлайна (день или неделя)
type UseCase struct {
	store          BookingStoreClient
	settingsClient SettingsClient
	fallbackConfig domain.ScheduleConfig
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStoreClient,
	settings SettingsClient,
	fallbackConfig domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:          store,
		settingsClient: settings,
		fallbackConfig: fallbackConfig,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case построения раскладки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimelineLayout: mode=%s, date=%s", req.Mode, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimelineLayout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию сетки (с деградацией до дефолтной)
	cfg, err := uc.settingsClient.GetScheduleConfigWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, settingsClient.ErrServiceDegraded) {
			uc.logger.Error("GetTimelineLayout: failed to get schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		cfg = uc.fallbackConfig
		uc.logger.Info("GetTimelineLayout: using fallback schedule config")
	}

	// 4. Определяем набор отображаемых дат и масштаб
	var (
		dates           []time.Time
		pixelsPerMinute float64
	)

	switch req.Mode {
	case ModeDay:
		dates = []time.Time{calendar.DateOnly(req.Date)}
		pixelsPerMinute = domain.DayPixelsPerMinute
	case ModeWeek:
		dates = calendar.WeekOf(req.Date)
		pixelsPerMinute = domain.WeekPixelsPerMinute
	}

	// 5. Получаем записи за весь видимый период одним запросом
	from := dates[0]
	to := dates[len(dates)-1]

	bookings, err := uc.store.ListByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetTimelineLayout: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 6. Группируем записи по дате
	byDate := make(map[string][]*domain.Booking, len(dates))
	for _, booking := range bookings {
		key := booking.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], booking)
	}

	// 7. Строим колонки
	days := make([]DayColumn, 0, len(dates))
	for _, date := range dates {
		dayBookings := byDate[date.Format(domain.DateFormat)]

		blocks, err := buildDayBlocks(dayBookings, cfg, pixelsPerMinute, now)
		if err != nil {
			uc.logger.Error("GetTimelineLayout: failed to build blocks for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to build layout blocks: %v", ErrInternal, err)
		}

		days = append(days, DayColumn{
			Date:            date,
			IsToday:         calendar.SameDay(date, now),
			Blocks:          blocks,
			NowOffsetPixels: calendar.NowOffset(now, date, cfg.WorkingHours, pixelsPerMinute),
		})
	}

	// 8. Стартовая позиция прокрутки для запрошенной даты
	requested := calendar.DateOnly(req.Date)
	landing := calendar.LandingOffset(
		now,
		requested,
		earliestStartMinutes(byDate[requested.Format(domain.DateFormat)]),
		cfg.WorkingHours,
		pixelsPerMinute,
	)

	uc.logger.Info("GetTimelineLayout: built %d day columns, %d bookings total", len(days), len(bookings))

	return &Response{
		Mode:                req.Mode,
		PixelsPerMinute:     pixelsPerMinute,
		Days:                days,
		LandingOffsetPixels: landing,
	}, nil
}
