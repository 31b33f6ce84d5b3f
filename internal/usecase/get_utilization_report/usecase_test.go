package get_utilization_report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	settingsClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
)

type fakeStore struct {
	bookings []*domain.Booking
	err      error

	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeStore) ListByDateRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	f.lastFrom = from
	f.lastTo = to
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeSettings struct {
	cfg domain.ScheduleConfig
	err error
}

func (f *fakeSettings) GetScheduleConfigWithGracefulDegradation(_ context.Context) (domain.ScheduleConfig, error) {
	return f.cfg, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_BuildsReportForRange(t *testing.T) {
	store := &fakeStore{bookings: []*domain.Booking{
		{ID: "b1", Date: date(2024, 6, 12), ServiceDurationMinutes: 50, Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	req := &Request{From: date(2024, 6, 10), To: date(2024, 6, 16)}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.From, resp.From)
	assert.Equal(t, req.To, resp.To)
	assert.Equal(t, req.From, store.lastFrom)
	assert.Equal(t, req.To, store.lastTo)
	assert.Equal(t, 1, resp.Report.BookingsCount)
	assert.Equal(t, 10, resp.Report.TotalWasteMinutes)
}

func TestExecute_FallsBackOnDegradedSettings(t *testing.T) {
	store := &fakeStore{bookings: []*domain.Booking{
		{ID: "b1", Date: date(2024, 6, 12), ServiceDurationMinutes: 50, Status: domain.StatusConfirmed},
	}}
	fallback := domain.ScheduleConfig{
		SlotDurationMinutes: 30,
		WorkingHours:        domain.WorkingHours{StartHour: 0, EndHour: 24},
	}
	uc := NewUseCase(store, &fakeSettings{err: settingsClient.ErrServiceDegraded}, fallback, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{From: date(2024, 6, 10), To: date(2024, 6, 16)})
	require.NoError(t, err)

	// Отчёт считался по fallback-сетке 30 минут: 50 -> 60 забронировано
	assert.Equal(t, 60, resp.Report.TotalBookedDurationMinutes)
	assert.Equal(t, 10, resp.Report.TotalWasteMinutes)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeStore{}, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{From: date(2024, 6, 16), To: date(2024, 6, 10)})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{To: date(2024, 6, 10)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: date(2024, 6, 10)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreError(t *testing.T) {
	uc := NewUseCase(
		&fakeStore{err: errors.New("connection refused")},
		&fakeSettings{cfg: domain.DefaultScheduleConfig()},
		domain.DefaultScheduleConfig(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{From: date(2024, 6, 10), To: date(2024, 6, 16)})
	assert.ErrorIs(t, err, ErrInternal)
}
