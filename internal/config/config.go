package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          Server          `toml:"server"`
	Logs            Logs            `toml:"logs"`
	Metrics         Metrics         `toml:"metrics"`
	BookingStore    Integration     `toml:"booking_store"`
	SettingsService Integration     `toml:"settings_service"`
	Schedule        Schedule        `toml:"schedule"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Integration настройки клиента внешнего сервиса
type Integration struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Schedule дефолтная конфигурация сетки расписания
// Используется, когда сервис настроек недоступен или настройки не заданы
type Schedule struct {
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	WorkdayStartHour    int `toml:"workday_start_hour"`
	WorkdayEndHour      int `toml:"workday_end_hour"`
}

// FallbackScheduleConfig возвращает дефолтную конфигурацию сетки как доменную модель
func (s Schedule) FallbackScheduleConfig() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		SlotDurationMinutes: s.SlotDurationMinutes,
		WorkingHours: domain.WorkingHours{
			StartHour: s.WorkdayStartHour,
			EndHour:   s.WorkdayEndHour,
		},
	}
}

// Load загружает конфигурацию из toml файла и валидирует её
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "schedule-service"
	}
	if cfg.BookingStore.Timeout == 0 {
		cfg.BookingStore.Timeout = 5
	}
	if cfg.SettingsService.Timeout == 0 {
		cfg.SettingsService.Timeout = 5
	}
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.Schedule.WorkdayEndHour == 0 {
		cfg.Schedule.WorkdayStartHour = domain.DefaultWorkdayStartHour
		cfg.Schedule.WorkdayEndHour = domain.DefaultWorkdayEndHour
	}
}

func validate(cfg *Config) error {
	if cfg.BookingStore.URL == "" {
		return fmt.Errorf("booking_store.url is required")
	}
	if cfg.SettingsService.URL == "" {
		return fmt.Errorf("settings_service.url is required")
	}
	if err := cfg.Schedule.FallbackScheduleConfig().Validate(); err != nil {
		return fmt.Errorf("invalid schedule defaults: %w", err)
	}
	return nil
}
