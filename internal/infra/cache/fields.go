package cache

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

const (
	cacheNameField     = "field"
	cacheNameFieldList = "field_list"

	fieldListKey = "fields:all"
)

func fieldKey(fieldID string) string {
	return "field:" + fieldID
}

// GetField читает нормализованный снимок поля
func (c *Cache) GetField(ctx context.Context, fieldID string) (*domain.Field, error) {
	var field domain.Field
	if err := c.get(ctx, cacheNameField, fieldKey(fieldID), &field); err != nil {
		return nil, err
	}
	return &field, nil
}

// SetField сохраняет снимок поля
func (c *Cache) SetField(ctx context.Context, field *domain.Field) error {
	return c.set(ctx, fieldKey(field.ID), field, c.fieldTTL)
}

// InvalidateField сбрасывает снимок поля и списочный кеш. Вызывается после
// любой мутации, способной изменить занятые слоты: кеш доступности не
// патчится, а перечитывается.
func (c *Cache) InvalidateField(ctx context.Context, fieldID string) error {
	return c.del(ctx, fieldKey(fieldID), fieldListKey)
}

// GetFieldList читает закешированный список полей
func (c *Cache) GetFieldList(ctx context.Context) ([]domain.Field, error) {
	var fields []domain.Field
	if err := c.get(ctx, cacheNameFieldList, fieldListKey, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// SetFieldList сохраняет список полей
func (c *Cache) SetFieldList(ctx context.Context, fields []domain.Field) error {
	return c.set(ctx, fieldListKey, fields, c.fieldTTL)
}
