package bookingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с документным хранилищем записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища записей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListByDateRange получает все записи за период [from, to] включительно
func (c *Client) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("from", from.Format(domain.DateFormat))
	query.Set("to", to.Format(domain.DateFormat))

	endpoint := fmt.Sprintf("%s/internal/bookings?%s", c.baseURL, query.Encode())

	var stored []Booking
	if err := c.doGet(ctx, endpoint, &stored); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(stored))
	for i := range stored {
		booking, err := stored[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetByID получает запись по идентификатору
func (c *Client) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/internal/bookings/%s", c.baseURL, url.PathEscape(id))

	var stored Booking
	if err := c.doGet(ctx, endpoint, &stored); err != nil {
		return nil, err
	}

	return stored.ToDomain()
}

// Update частично обновляет запись и возвращает её актуальное состояние
func (c *Client) Update(ctx context.Context, id string, patch UpdateRequest) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/internal/bookings/%s", c.baseURL, url.PathEscape(id))

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal update request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusConflict:
		return nil, ErrConflict
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var stored Booking
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return stored.ToDomain()
}

// doGet выполняет GET запрос и декодирует JSON ответ в out
func (c *Client) doGet(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
