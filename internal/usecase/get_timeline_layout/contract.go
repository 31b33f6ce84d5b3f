package get_timeline_layout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingStoreClient интерфейс клиента документного хранилища записей
type BookingStoreClient interface {
	// ListByDateRange получает все записи за период [from, to] включительно
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// SettingsClient интерфейс клиента сервиса настроек
type SettingsClient interface {
	GetScheduleConfigWithGracefulDegradation(ctx context.Context) (domain.ScheduleConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
