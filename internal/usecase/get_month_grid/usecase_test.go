package get_month_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/calendar"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
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

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(store *fakeStore, now time.Time) *UseCase {
	uc := NewUseCase(store, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_BuildsFullGrid(t *testing.T) {
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{bookings: []*domain.Booking{
		{ID: "b1", Date: date(2024, 6, 12), StartTime: "09:00", ServiceDurationMinutes: 30, Status: domain.StatusConfirmed},
		{ID: "b2", Date: date(2024, 6, 20), StartTime: "10:00", ServiceDurationMinutes: 30, Status: domain.StatusRejected},
	}}

	uc := newTestUseCase(store, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June})
	require.NoError(t, err)

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, time.June, resp.Month)
	require.Len(t, resp.Cells, calendar.MonthGridCells)

	// Выборка покрывает всю сетку: от воскресенья перед месяцем до конца 6-й строки
	assert.Equal(t, date(2024, 5, 26), store.lastFrom)
	assert.Equal(t, date(2024, 7, 6), store.lastTo)

	var withBookings []string
	for _, cell := range resp.Cells {
		if cell.HasBookings {
			withBookings = append(withBookings, cell.Date.Format(domain.DateFormat))
		}
		if cell.IsToday {
			assert.Equal(t, date(2024, 6, 12), cell.Date)
		}
	}

	// Отклонённая запись 20-го числа маркер не зажигает
	assert.Equal(t, []string{"2024-06-12"}, withBookings)
}

func TestExecute_SelectedDateFlag(t *testing.T) {
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)
	selected := date(2024, 6, 20)

	uc := newTestUseCase(&fakeStore{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June, Selected: &selected})
	require.NoError(t, err)

	var selectedCount int
	for _, cell := range resp.Cells {
		if cell.IsSelected {
			selectedCount++
			assert.Equal(t, selected, cell.Date)
		}
	}
	assert.Equal(t, 1, selectedCount)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeStore{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Year: 1969, Month: time.June})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2024, Month: time.Month(13)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2024, Month: time.Month(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreError(t *testing.T) {
	uc := newTestUseCase(&fakeStore{err: errors.New("connection refused")}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.June})
	assert.ErrorIs(t, err, ErrInternal)
}
