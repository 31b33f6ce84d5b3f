package settingsservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом настроек бизнеса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса настроек
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetScheduleConfig получает конфигурацию сетки расписания
func (c *Client) GetScheduleConfig(ctx context.Context) (domain.ScheduleConfig, error) {
	endpoint := fmt.Sprintf("%s/internal/settings/schedule", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return domain.ScheduleConfig{}, ErrSettingsNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return domain.ScheduleConfig{}, fmt.Errorf("%w: unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var settings ScheduleSettings
	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return settings.ToDomain()
}

// GetScheduleConfigWithGracefulDegradation получает конфигурацию сетки с graceful degradation
// При недоступности сервиса настроек возвращает ErrServiceDegraded, что позволяет
// вызывающей стороне продолжить работу на дефолтной конфигурации
func (c *Client) GetScheduleConfigWithGracefulDegradation(ctx context.Context) (domain.ScheduleConfig, error) {
	cfg, err := c.GetScheduleConfig(ctx)
	if err != nil {
		// Отсутствие настроек - штатная ситуация нового бизнеса, деградируем молча
		if errors.Is(err, ErrSettingsNotFound) {
			c.log.Info("Schedule settings not configured, falling back to defaults")
			return domain.ScheduleConfig{}, fmt.Errorf("%w: settings not found", ErrServiceDegraded)
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("SettingsService unavailable, applying graceful degradation: %v", err)
		return domain.ScheduleConfig{}, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	return cfg, nil
}
