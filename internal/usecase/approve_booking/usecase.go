package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	storeClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/bookingstore"
	settingsClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// UseCase use case подтверждения ожидающей записи
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

// Execute выполняет use case подтверждения записи
//
// Политика: ожидающая запись может показывать неокруглённую запрошенную
// длительность, но подтверждённая всегда хранит длительность, кратную слоту.
// Округление - до БЛИЖАЙШЕГО кратного (не вверх), минимум один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveBooking: booking=%s, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем запись
	booking, err := uc.store.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, storeClient.ErrBookingNotFound) {
			uc.logger.Warn("ApproveBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ApproveBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем допустимость перехода
	if !booking.CanBeApproved() {
		uc.logger.Warn("ApproveBooking: booking id=%s in status=%s is not pending", req.BookingID, booking.Status)
		return nil, ErrNotPending
	}

	// 4. Получаем конфигурацию сетки (с деградацией до дефолтной)
	cfg, err := uc.settingsClient.GetScheduleConfigWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, settingsClient.ErrServiceDegraded) {
			uc.logger.Error("ApproveBooking: failed to get schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
		}
		cfg = uc.fallbackConfig
		uc.logger.Info("ApproveBooking: using fallback schedule config")
	}

	// 5. Округляем длительность до сетки и выводим время окончания
	approvedDuration := domain.RoundDurationToGrid(booking.ServiceDurationMinutes, cfg.SlotDurationMinutes)

	endTime, err := booking.StartTime.AddMinutes(approvedDuration)
	if err != nil {
		uc.logger.Error("ApproveBooking: failed to derive end time for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to derive end time: %v", ErrInternal, err)
	}

	// 6. Сохраняем через хранилище
	patch := storeClient.UpdateRequest{
		Status:                 ptr.Ptr(string(domain.StatusConfirmed)),
		ServiceDurationMinutes: ptr.Ptr(approvedDuration),
		EndTime:                ptr.Ptr(endTime.String()),
	}

	updated, err := uc.store.Update(ctx, req.BookingID, patch)
	if err != nil {
		switch {
		case errors.Is(err, storeClient.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, storeClient.ErrConflict):
			uc.logger.Warn("ApproveBooking: update conflict for booking id=%s", req.BookingID)
			return nil, ErrUpdateConflict
		default:
			uc.logger.Error("ApproveBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ApproveBooking: booking id=%s approved, duration %d -> %d minutes, end=%s",
		req.BookingID, booking.ServiceDurationMinutes, approvedDuration, endTime)

	return &Response{
		ID:                      updated.ID,
		Date:                    updated.Date.Format(domain.DateFormat),
		StartTime:               updated.StartTime.String(),
		EndTime:                 endTime.String(),
		ApprovedDurationMinutes: approvedDuration,
		SlotsUsed:               approvedDuration / cfg.SlotDurationMinutes,
		Status:                  string(updated.Status),
		ServiceName:             updated.ServiceName,
		ClientName:              updated.ClientName,
	}, nil
}
