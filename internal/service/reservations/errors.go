package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить:
	// оно уже завершено или до начала осталось меньше допустимого срока
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrBackendRejected возвращается, когда бэкенд отклонил отмену
	ErrBackendRejected = errors.New("backend rejected cancellation")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
