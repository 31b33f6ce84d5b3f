package settingsservice

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки расписания не заданы
	ErrSettingsNotFound = errors.New("schedule settings not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("settingsservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("settingsservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис настроек недоступен и следует использовать дефолтную конфигурацию
	ErrServiceDegraded = errors.New("settingsservice unavailable: graceful degradation applied")
)
