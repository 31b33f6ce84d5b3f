package get_month_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/calendar"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case построения месячной сетки навигации
type UseCase struct {
	store        BookingStoreClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStoreClient, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения месячной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthGrid: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var selected time.Time
	if req.Selected != nil {
		selected = *req.Selected
	}

	// 3. Определяем границы полной сетки (42 ячейки, включая дни соседних месяцев)
	firstOfMonth := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, now.Location())
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := gridStart.AddDate(0, 0, calendar.MonthGridCells-1)

	// 4. Получаем активные записи за период сетки одним запросом
	bookings, err := uc.store.ListByDateRange(ctx, gridStart, gridEnd)
	if err != nil {
		uc.logger.Error("GetMonthGrid: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	datesWithBookings := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		datesWithBookings[booking.Date.Format(domain.DateFormat)] = struct{}{}
	}

	// 5. Строим сетку
	cells := calendar.MonthGrid(req.Year, req.Month, now, selected, func(date time.Time) bool {
		_, ok := datesWithBookings[date.Format(domain.DateFormat)]
		return ok
	})

	uc.logger.Info("GetMonthGrid: built %d cells, %d dates with bookings", len(cells), len(datesWithBookings))

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Cells: cells,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year < 1970 || req.Year > 9999 {
		return fmt.Errorf("%w: year must be within 1970-9999, got %d", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be within 1-12, got %d", ErrInvalidInput, req.Month)
	}
	return nil
}
