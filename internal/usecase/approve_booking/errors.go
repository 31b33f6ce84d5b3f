package approve_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotPending возвращается при попытке подтвердить запись не в статусе pending
	ErrNotPending = errors.New("booking is not pending approval")

	// ErrUpdateConflict возвращается, когда хранилище отклонило обновление
	ErrUpdateConflict = errors.New("booking update conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
