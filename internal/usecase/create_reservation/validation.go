package create_reservation

import (
	"fmt"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.UserID == "" {
		return ErrNotAuthenticated
	}

	if req.FieldID == "" {
		return fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}

	// Неполный выбор - отдельная ошибка: фронт показывает подсказку,
	// а не сообщение о некорректных данных
	if req.Date.IsZero() || req.Hour.IsZero() {
		return ErrSelectionIncomplete
	}

	// Час должен быть одной из меток фиксированной сетки
	if !domain.IsValidHourLabel(req.Hour) {
		return fmt.Errorf("%w: invalid hour label %q", ErrInvalidInput, req.Hour)
	}

	return nil
}
