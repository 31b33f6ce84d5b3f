package domain

// UtilizationRecord is the per-booking slice of the utilization report:
// how much grid the booking reserved vs. how much it actually needed
type UtilizationRecord struct {
	Date                   string // YYYY-MM-DD
	BookingID              string
	ServiceDurationMinutes int
	BookedDurationMinutes  int
	SlotsUsed              int
	WasteMinutes           int
}

// UtilizationReport aggregates grid usage and waste across a date range
//
// Derived and ephemeral, produced by a pure read-only computation.
type UtilizationReport struct {
	TotalServiceDurationMinutes int
	TotalBookedDurationMinutes  int
	TotalWasteMinutes           int

	// WastePercentage = TotalWaste / TotalBooked * 100, 0 when nothing booked
	WastePercentage float64

	// AverageWastePerBooking = TotalWaste / BookingsCount, 0 when empty
	AverageWastePerBooking float64

	BookingsCount int

	// Dates хранит порядок первого появления дат, BookingsByDate - группировку
	Dates          []string
	BookingsByDate map[string][]UtilizationRecord
}
