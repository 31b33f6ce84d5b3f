package domain

import "fmt"

// WorkingHours visible working window of the business day, in whole hours
type WorkingHours struct {
	StartHour int // 0-24
	EndHour   int // 0-24, must be greater than StartHour
}

// StartMinutes returns the window start in minutes since midnight
func (w WorkingHours) StartMinutes() int {
	return w.StartHour * 60
}

// EndMinutes returns the window end in minutes since midnight
func (w WorkingHours) EndMinutes() int {
	return w.EndHour * 60
}

// VisibleMinutes returns the length of the visible window in minutes
func (w WorkingHours) VisibleMinutes() int {
	return w.EndMinutes() - w.StartMinutes()
}

// Validate проверяет корректность рабочего окна
func (w WorkingHours) Validate() error {
	if w.StartHour < 0 || w.StartHour > 24 {
		return fmt.Errorf("working hours start must be within 0-24, got %d", w.StartHour)
	}
	if w.EndHour < 0 || w.EndHour > 24 {
		return fmt.Errorf("working hours end must be within 0-24, got %d", w.EndHour)
	}
	if w.StartHour >= w.EndHour {
		return fmt.Errorf("working hours start (%d) must be before end (%d)", w.StartHour, w.EndHour)
	}
	return nil
}

// ScheduleConfig represents the slot-grid configuration of the business
//
// Read-only snapshot per rendering pass; owned by the settings collaborator,
// the scheduling core never mutates it.
type ScheduleConfig struct {
	// SlotDurationMinutes размер ячейки сетки расписания
	// Предполагается, что значение делит 60 нацело (не проверяется строго)
	SlotDurationMinutes int

	WorkingHours WorkingHours
}

// Validate проверяет конфигурацию сетки
func (c ScheduleConfig) Validate() error {
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("slot duration must be within %d-%d minutes, got %d",
			MinSlotDurationMinutes, MaxSlotDurationMinutes, c.SlotDurationMinutes)
	}
	return c.WorkingHours.Validate()
}

// DefaultScheduleConfig returns the fallback configuration used when the
// settings collaborator provides nothing
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		WorkingHours: WorkingHours{
			StartHour: DefaultWorkdayStartHour,
			EndHour:   DefaultWorkdayEndHour,
		},
	}
}
