package bookingstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListByDateRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/bookings", r.URL.Path)
		assert.Equal(t, "2024-06-09", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("to"))

		json.NewEncoder(w).Encode([]Booking{
			{
				ID:                     "b1",
				Date:                   "2024-06-12",
				StartTime:              "09:00",
				ServiceDurationMinutes: 50,
				Status:                 "confirmed",
				ServiceName:            "Стрижка",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	bookings, err := client.ListByDateRange(
		context.Background(),
		time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	booking := bookings[0]
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), booking.Date)
	assert.Equal(t, "09:00", booking.StartTime.String())
	assert.Nil(t, booking.EndTime)
	assert.Equal(t, 50, booking.ServiceDurationMinutes)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestGetByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/bookings/b1", r.URL.Path)

		json.NewEncoder(w).Encode(Booking{
			ID:                     "b1",
			Date:                   "2024-06-12",
			StartTime:              "09:00",
			EndTime:                ptr.Ptr("09:45"),
			ServiceDurationMinutes: 45,
			Status:                 "pending",
			ServiceName:            "Стрижка",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	booking, err := client.GetByID(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "b1", booking.ID)
	require.NotNil(t, booking.EndTime)
	assert.Equal(t, "09:45", booking.EndTime.String())
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/internal/bookings/b1", r.URL.Path)

		var patch UpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.NotNil(t, patch.Status)
		assert.Equal(t, "confirmed", *patch.Status)
		require.NotNil(t, patch.ServiceDurationMinutes)
		assert.Equal(t, 45, *patch.ServiceDurationMinutes)

		json.NewEncoder(w).Encode(Booking{
			ID:                     "b1",
			Date:                   "2024-06-12",
			StartTime:              "09:00",
			EndTime:                ptr.Ptr("09:45"),
			ServiceDurationMinutes: 45,
			Status:                 "confirmed",
			ServiceName:            "Стрижка",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	updated, err := client.Update(context.Background(), "b1", UpdateRequest{
		Status:                 ptr.Ptr("confirmed"),
		ServiceDurationMinutes: ptr.Ptr(45),
		EndTime:                ptr.Ptr("09:45"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, 45, updated.ServiceDurationMinutes)
}

func TestUpdate_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	_, err := client.Update(context.Background(), "b1", UpdateRequest{Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBookingToDomain_InvalidData(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
	}{
		{
			name: "invalid date",
			booking: Booking{
				ID: "b1", Date: "12.06.2024", StartTime: "09:00", ServiceDurationMinutes: 30,
			},
		},
		{
			name: "invalid start time",
			booking: Booking{
				ID: "b1", Date: "2024-06-12", StartTime: "9am", ServiceDurationMinutes: 30,
			},
		},
		{
			name: "invalid end time",
			booking: Booking{
				ID: "b1", Date: "2024-06-12", StartTime: "09:00",
				EndTime: ptr.Ptr("25:99"), ServiceDurationMinutes: 30,
			},
		},
		{
			name: "non-positive duration",
			booking: Booking{
				ID: "b1", Date: "2024-06-12", StartTime: "09:00", ServiceDurationMinutes: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.booking.ToDomain()
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}
