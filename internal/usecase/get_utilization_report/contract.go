package get_utilization_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingStoreClient интерфейс клиента документного хранилища записей
type BookingStoreClient interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// SettingsClient интерфейс клиента сервиса настроек
type SettingsClient interface {
	GetScheduleConfigWithGracefulDegradation(ctx context.Context) (domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
