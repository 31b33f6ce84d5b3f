package domain

// SlotsNeeded returns the number of grid slots a service duration consumes:
// ceil(serviceDuration / slotDuration), never less than one slot.
// The caller guarantees a positive serviceDurationMinutes; non-positive input
// is rejected upstream and never reaches this function.
func SlotsNeeded(serviceDurationMinutes, slotDurationMinutes int) int {
	if slotDurationMinutes <= 0 {
		return 1
	}

	slots := (serviceDurationMinutes + slotDurationMinutes - 1) / slotDurationMinutes
	if slots < 1 {
		slots = 1
	}
	return slots
}

// BookedDuration returns the grid-aligned duration actually reserved:
// always a positive multiple of the slot size and never less than the
// requested service duration
func BookedDuration(serviceDurationMinutes, slotDurationMinutes int) int {
	return SlotsNeeded(serviceDurationMinutes, slotDurationMinutes) * slotDurationMinutes
}

// RoundDurationToGrid rounds a duration to the NEAREST slot multiple with a
// floor of one slot. Approved bookings store a grid-exact duration, and the
// approval policy rounds rather than ceils: a 50-minute request on a 15-minute
// grid is stored as 45 minutes, not 60.
func RoundDurationToGrid(durationMinutes, slotDurationMinutes int) int {
	if slotDurationMinutes <= 0 {
		return durationMinutes
	}

	rounded := (durationMinutes + slotDurationMinutes/2) / slotDurationMinutes * slotDurationMinutes
	if rounded < slotDurationMinutes {
		rounded = slotDurationMinutes
	}
	return rounded
}

// WasteMinutes returns the unused buffer time between the booked and the
// true service duration
func WasteMinutes(serviceDurationMinutes, slotDurationMinutes int) int {
	return BookedDuration(serviceDurationMinutes, slotDurationMinutes) - serviceDurationMinutes
}
