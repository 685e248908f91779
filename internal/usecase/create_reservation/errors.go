package create_reservation

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда запрос пришел без сессии
	ErrNotAuthenticated = errors.New("create_reservation: not authenticated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSelectionIncomplete возвращается, когда дата или час не выбраны
	ErrSelectionIncomplete = errors.New("create_reservation: selection incomplete")

	// ErrPastSlot возвращается при попытке забронировать слот в прошлом
	ErrPastSlot = errors.New("create_reservation: slot is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_reservation: field not found")

	// ErrBackendRejected возвращается, когда бэкенд отклонил бронирование
	ErrBackendRejected = errors.New("create_reservation: backend rejected reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
