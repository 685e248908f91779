package fields

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field not found")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен и кеш пуст
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fields service: internal error")
)
