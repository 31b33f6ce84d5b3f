package bookingstore

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена в хранилище
	ErrBookingNotFound = errors.New("booking not found")

	// ErrConflict возвращается, когда хранилище отклонило обновление из-за конфликта версий
	ErrConflict = errors.New("booking update conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("bookingstore client: invalid response")
)
