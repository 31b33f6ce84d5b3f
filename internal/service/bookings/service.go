package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/bookingstore"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Service сервис для работы с записями админ-консоли
type Service struct {
	store          BookingStoreClient
	settingsClient SettingsClient
	fallbackConfig domain.ScheduleConfig
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	store BookingStoreClient,
	settingsClient SettingsClient,
	fallbackConfig domain.ScheduleConfig,
	logger Logger,
) *Service {
	return &Service{
		store:          store,
		settingsClient: settingsClient,
		fallbackConfig: fallbackConfig,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetByID получает запись по идентификатору
// Производные поля (endTime, bookedDuration, isPast) считаются от актуальной
// конфигурации сетки на момент запроса
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: store error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	cfg := s.resolveConfig(ctx)

	resp, err := models.FromDomainBooking(booking, cfg, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetByID: failed to convert booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - conversion error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// Reject отклоняет ожидающую или подтверждённую запись
// Переход статуса выполняет внешнее хранилище; сервис проверяет допустимость
// перехода и длину причины
func (s *Service) Reject(ctx context.Context, req *models.RejectBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reject: rejecting booking id=%s by user=%d", req.BookingID, req.UserID)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if len(req.RejectionReason) > domain.MaxRejectionReasonLength {
		return nil, fmt.Errorf("%w: rejection reason exceeds %d characters",
			ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	booking, err := s.store.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			s.logger.Warn("Reject: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reject: store error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Reject - store error: %v", ErrInternal, err)
	}

	if !booking.CanBeRejected() {
		s.logger.Warn("Reject: booking id=%s in status=%s cannot be rejected", req.BookingID, booking.Status)
		return nil, ErrCannotReject
	}

	patch := bookingstore.UpdateRequest{
		Status: ptr.Ptr(string(domain.StatusRejected)),
	}
	if req.RejectionReason != "" {
		patch.RejectionReason = &req.RejectionReason
	}

	updated, err := s.store.Update(ctx, req.BookingID, patch)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reject: failed to update booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Reject - update error: %v", ErrInternal, err)
	}

	cfg := s.resolveConfig(ctx)

	resp, err := models.FromDomainBooking(updated, cfg, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Reject: failed to convert booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Reject - conversion error: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected booking id=%s", req.BookingID)
	return resp, nil
}

// resolveConfig получает конфигурацию сетки, деградируя до дефолтной
// при недоступности сервиса настроек
func (s *Service) resolveConfig(ctx context.Context) domain.ScheduleConfig {
	cfg, err := s.settingsClient.GetScheduleConfigWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, settingsservice.ErrServiceDegraded) {
			return s.fallbackConfig
		}
		s.logger.Error("resolveConfig: unexpected settings error: %v", err)
		return s.fallbackConfig
	}
	return cfg
}
