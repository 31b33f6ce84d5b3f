package get_timeline_layout

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	switch req.Mode {
	case ModeDay, ModeWeek:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
