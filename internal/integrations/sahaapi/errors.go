package sahaapi

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенный ресурс отсутствует на бэкенде
	ErrNotFound = errors.New("sahaapi client: resource not found")

	// ErrUnauthorized возвращается при отсутствующем или отклонённом токене
	ErrUnauthorized = errors.New("sahaapi client: unauthorized")

	// ErrConflict возвращается, когда бэкенд отклонил бронирование как занятое
	ErrConflict = errors.New("sahaapi client: slot conflict")

	// ErrBackend возвращается для прочих ошибок, о которых сообщил бэкенд
	ErrBackend = errors.New("sahaapi client: backend error")

	// ErrInternal возвращается при ошибках транспорта и самого клиента
	ErrInternal = errors.New("sahaapi client: internal error")

	// ErrInvalidResponse возвращается при нечитаемом ответе бэкенда
	ErrInvalidResponse = errors.New("sahaapi client: invalid response")
)

// APIError несёт человекочитаемое сообщение бэкенда без изменений,
// чтобы его можно было показать пользователю дословно.
type APIError struct {
	StatusCode int
	Message    string
	sentinel   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// Message извлекает человекочитаемое сообщение из ошибки клиента.
// Для не-APIError ошибок возвращает generic текст.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "something went wrong"
}
