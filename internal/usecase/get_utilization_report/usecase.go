package get_utilization_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	settingsClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
)

// UseCase use case построения отчёта утилизации сетки расписания
type UseCase struct {
	store          BookingStoreClient
	settingsClient SettingsClient
	fallbackConfig domain.ScheduleConfig
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
		logger:         logger,
	}
}

// Execute выполняет use case построения отчёта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUtilizationReport: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetUtilizationReport: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию сетки (с деградацией до дефолтной)
	cfg, err := uc.settingsClient.GetScheduleConfigWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, settingsClient.ErrServiceDegraded) {
			uc.logger.Error("GetUtilizationReport: failed to get schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		cfg = uc.fallbackConfig
		uc.logger.Info("GetUtilizationReport: using fallback schedule config")
	}

	// 3. Получаем записи за период
	bookings, err := uc.store.ListByDateRange(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetUtilizationReport: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Агрегируем
	report := buildReport(bookings, cfg)

	uc.logger.Info("GetUtilizationReport: %d bookings, total waste %d minutes (%.1f%%)",
		report.BookingsCount, report.TotalWasteMinutes, report.WastePercentage)

	return &Response{
		From:   req.From,
		To:     req.To,
		Report: report,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}
	if req.To.IsZero() {
		return fmt.Errorf("%w: to date is required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to (%s) is before from (%s)", ErrInvalidDateRange,
			req.To.Format(domain.DateFormat), req.From.Format(domain.DateFormat))
	}
	return nil
}
