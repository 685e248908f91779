package sahaapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// CreateReservation отправляет бронирование на бэкенд.
// Мутация: без повторов; Idempotency-Key защищает от дублей на случай,
// если вызывающая сторона всё же повторит запрос.
func (c *Client) CreateReservation(ctx context.Context, token string, req *CreateReservationRequest) (*ReservationPayload, error) {
	headers := map[string]string{
		"Idempotency-Key": uuid.New().String(),
	}

	var created ReservationPayload
	if err := c.do(ctx, "create_reservation", http.MethodPost, "/api/reservations", token, req, headers, &created, false); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReservation отправляет частичное обновление бронирования (обычно
// только статус). Мутация: без повторов.
func (c *Client) UpdateReservation(ctx context.Context, token, reservationID string, req *UpdateReservationRequest) (*ReservationPayload, error) {
	var updated ReservationPayload
	if err := c.do(ctx, "update_reservation", http.MethodPatch, "/api/reservations/"+reservationID, token, req, nil, &updated, false); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetReservation получает бронирование по идентификатору.
func (c *Client) GetReservation(ctx context.Context, token, reservationID string) (*ReservationPayload, error) {
	var reservation ReservationPayload
	if err := c.do(ctx, "get_reservation", http.MethodGet, "/api/reservations/"+reservationID, token, nil, nil, &reservation, true); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListUserReservations получает бронирования текущего пользователя
// (scope определяется токеном) сырым JSON-ом.
func (c *Client) ListUserReservations(ctx context.Context, token string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_user_reservations", http.MethodGet, "/api/reservations", token, nil, nil, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}
