package fields

import (
	"context"
	"encoding/json"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// SahaAPIClient интерфейс клиента Saha API для работы с полями
type SahaAPIClient interface {
	GetField(ctx context.Context, fieldID string) (*sahaapi.FieldPayload, error)
	ListFields(ctx context.Context) (json.RawMessage, error)
}

// FieldCache интерфейс кеша нормализованных полей
type FieldCache interface {
	GetField(ctx context.Context, fieldID string) (*domain.Field, error)
	SetField(ctx context.Context, field *domain.Field) error
	GetFieldList(ctx context.Context) ([]domain.Field, error)
	SetFieldList(ctx context.Context, list []domain.Field) error
}

// Transformer интерфейс нормализации сырых данных бэкенда
type Transformer interface {
	Field(p *sahaapi.FieldPayload) domain.Field
	Fields(raw json.RawMessage) []domain.Field
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
