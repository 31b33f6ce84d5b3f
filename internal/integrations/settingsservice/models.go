package settingsservice

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleSettings модель настроек расписания из сервиса настроек
type ScheduleSettings struct {
	SlotDurationMinutes int          `json:"slotDurationMinutes"`
	WorkingHours        WorkingHours `json:"workingHours"`
}

// WorkingHours рабочее окно бизнеса в целых часах
type WorkingHours struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// ErrorResponse модель ошибки от сервиса настроек
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует настройки в доменную конфигурацию сетки с валидацией
func (s *ScheduleSettings) ToDomain() (domain.ScheduleConfig, error) {
	cfg := domain.ScheduleConfig{
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkingHours: domain.WorkingHours{
			StartHour: s.WorkingHours.StartHour,
			EndHour:   s.WorkingHours.EndHour,
		},
	}

	if err := cfg.Validate(); err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return cfg, nil
}
