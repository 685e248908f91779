package sahaapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GetField получает поле по идентификатору вместе со списком занятых дат.
// Чтение: допускается один повтор при транспортной ошибке.
func (c *Client) GetField(ctx context.Context, fieldID string) (*FieldPayload, error) {
	var field FieldPayload
	err := c.do(ctx, "get_field", http.MethodGet, "/api/fields/"+fieldID, "", nil, nil, &field, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: field id=%s", ErrNotFound, fieldID)
		}
		return nil, err
	}
	return &field, nil
}

// ListFields получает список полей сырым JSON-ом: ответ может быть
// частично некорректным, тотальная нормализация происходит в transform.
func (c *Client) ListFields(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_fields", http.MethodGet, "/api/fields", "", nil, nil, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}
