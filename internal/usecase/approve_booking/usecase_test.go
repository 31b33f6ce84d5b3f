package approve_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/bookingstore"
	settingsClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/settingsservice"
)

type fakeStore struct {
	booking   *domain.Booking
	getErr    error
	updateErr error

	lastID    string
	lastPatch bookingstore.UpdateRequest
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeStore) Update(_ context.Context, id string, patch bookingstore.UpdateRequest) (*domain.Booking, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	updated := *f.booking
	if patch.Status != nil {
		updated.Status = domain.BookingStatus(*patch.Status)
	}
	if patch.ServiceDurationMinutes != nil {
		updated.ServiceDurationMinutes = *patch.ServiceDurationMinutes
	}
	return &updated, nil
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

func pendingBooking(durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:                     "b1",
		Date:                   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:              "09:00",
		ServiceDurationMinutes: durationMinutes,
		Status:                 domain.StatusPending,
		ServiceName:            "Стрижка",
	}
}

func TestExecute_RoundsDurationToNearestSlot(t *testing.T) {
	// 50 минут на 15-минутной сетке подтверждаются как 45, не 60
	store := &fakeStore{booking: pendingBooking(50)}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.ApprovedDurationMinutes)
	assert.Equal(t, 3, resp.SlotsUsed)
	assert.Equal(t, "09:45", resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Патч содержит статус, выровненную длительность и выведенный конец
	assert.Equal(t, "b1", store.lastID)
	require.NotNil(t, store.lastPatch.Status)
	assert.Equal(t, string(domain.StatusConfirmed), *store.lastPatch.Status)
	require.NotNil(t, store.lastPatch.ServiceDurationMinutes)
	assert.Equal(t, 45, *store.lastPatch.ServiceDurationMinutes)
	require.NotNil(t, store.lastPatch.EndTime)
	assert.Equal(t, "09:45", *store.lastPatch.EndTime)
}

func TestExecute_FloorsAtOneSlot(t *testing.T) {
	store := &fakeStore{booking: pendingBooking(5)}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 15, resp.ApprovedDurationMinutes)
	assert.Equal(t, 1, resp.SlotsUsed)
	assert.Equal(t, "09:15", resp.EndTime)
}

func TestExecute_GridExactDurationUnchanged(t *testing.T) {
	store := &fakeStore{booking: pendingBooking(45)}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.ApprovedDurationMinutes)
	assert.Equal(t, "09:45", resp.EndTime)
}

func TestExecute_EndTimeWrapsMidnight(t *testing.T) {
	booking := pendingBooking(45)
	booking.StartTime = "23:30"
	store := &fakeStore{booking: booking}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, "00:15", resp.EndTime)
}

func TestExecute_NotPending(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusRejected} {
		booking := pendingBooking(30)
		booking.Status = status
		store := &fakeStore{booking: booking}
		uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
		assert.ErrorIs(t, err, ErrNotPending, "status=%s", status)

		// До обновления хранилища дело не дошло
		assert.Empty(t, store.lastID)
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	store := &fakeStore{getErr: bookingstore.ErrBookingNotFound}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: "missing", UserID: 7})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_UpdateConflict(t *testing.T) {
	store := &fakeStore{booking: pendingBooking(30), updateErr: bookingstore.ErrConflict}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	assert.ErrorIs(t, err, ErrUpdateConflict)
}

func TestExecute_FallsBackOnDegradedSettings(t *testing.T) {
	store := &fakeStore{booking: pendingBooking(50)}
	fallback := domain.ScheduleConfig{
		SlotDurationMinutes: 30,
		WorkingHours:        domain.WorkingHours{StartHour: 0, EndHour: 24},
	}
	uc := NewUseCase(store, &fakeSettings{err: settingsClient.ErrServiceDegraded}, fallback, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	require.NoError(t, err)

	// Округление шло по fallback-сетке 30 минут: 50 -> 60
	assert.Equal(t, 60, resp.ApprovedDurationMinutes)
	assert.Equal(t, 2, resp.SlotsUsed)
}

func TestExecute_MissingBookingID(t *testing.T) {
	uc := NewUseCase(&fakeStore{}, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreError(t *testing.T) {
	store := &fakeStore{getErr: errors.New("connection refused")}
	uc := NewUseCase(store, &fakeSettings{cfg: domain.DefaultScheduleConfig()}, domain.DefaultScheduleConfig(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", UserID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}
