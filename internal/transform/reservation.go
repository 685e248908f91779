package transform

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

var (
	// ErrMalformedReservation возвращается, когда авторитетная запись
	// бронирования нечитаема (нет id или даты)
	ErrMalformedReservation = errors.New("transform: malformed reservation payload")
)

// Reservation нормализует авторитетную запись бронирования. В отличие от
// списковых трансформеров здесь битая запись - это ошибка: результат
// мутации обязан быть читаемым, иначе кеш сверять не с чем.
func (t *Transformer) Reservation(p *sahaapi.ReservationPayload) (*domain.Reservation, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedReservation)
	}

	instant, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q: %v", ErrMalformedReservation, p.Date, err)
	}

	status := domain.ReservationStatus(p.Status)
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedReservation, p.Status)
	}

	reservation := &domain.Reservation{
		ID:             p.ID,
		UserID:         p.UserID,
		FieldID:        p.FieldID,
		Instant:        instant,
		Status:         status,
		Recurring:      p.Recurring,
		SubscriptionID: p.SubscriptionID,
	}

	if p.Field != nil {
		if p.Field.Name != nil {
			reservation.FieldName = *p.Field.Name
		}
		if p.Field.PricePerHour != nil {
			reservation.PricePerHour = *p.Field.PricePerHour
		}
	}
	if p.CreatedAt != nil {
		if createdAt, err := time.Parse(time.RFC3339, *p.CreatedAt); err == nil {
			reservation.CreatedAt = createdAt
		}
	}
	if p.UpdatedAt != nil {
		if updatedAt, err := time.Parse(time.RFC3339, *p.UpdatedAt); err == nil {
			reservation.UpdatedAt = updatedAt
		}
	}

	return reservation, nil
}

// Reservations нормализует сырой список бронирований; тотальна, битые
// элементы пропускаются с логом.
func (t *Transformer) Reservations(raw json.RawMessage) []domain.Reservation {
	reservations := make([]domain.Reservation, 0)

	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		t.log.Warn("transform: reservation list payload is not an array, returning empty list")
		return reservations
	}

	for i, item := range items {
		var payload sahaapi.ReservationPayload
		if err := json.Unmarshal(item, &payload); err != nil {
			t.log.Warn("transform: skipping malformed reservation entry at index %d", i)
			continue
		}
		reservation, err := t.Reservation(&payload)
		if err != nil {
			t.log.Warn("transform: skipping reservation entry at index %d: %v", i, err)
			continue
		}
		reservations = append(reservations, *reservation)
	}

	return reservations
}
