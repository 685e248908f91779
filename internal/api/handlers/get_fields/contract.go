package get_fields

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/service/fields/models"
)

type FieldService interface {
	ListFields(ctx context.Context) ([]models.FieldCard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
