package get_timeline_layout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidMode возвращается при неизвестном режиме таймлайна
	ErrInvalidMode = errors.New("invalid timeline mode")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
