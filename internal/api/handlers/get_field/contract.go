package get_field

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

type FieldService interface {
	GetField(ctx context.Context, fieldID string) (*domain.Field, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
