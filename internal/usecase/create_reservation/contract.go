package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// FieldProvider интерфейс источника нормализованных полей (кеш + бэкенд)
type FieldProvider interface {
	GetField(ctx context.Context, fieldID string) (*domain.Field, error)
}

// SahaAPIClient интерфейс клиента Saha API для создания бронирования.
// GetField используется для свежего предполётного снимка занятости,
// минуя кеш.
type SahaAPIClient interface {
	GetField(ctx context.Context, fieldID string) (*sahaapi.FieldPayload, error)
	CreateReservation(ctx context.Context, token string, req *sahaapi.CreateReservationRequest) (*sahaapi.ReservationPayload, error)
}

// ReservationCache интерфейс кеша бронирований
type ReservationCache interface {
	PushReservation(ctx context.Context, reservation *domain.Reservation) error
	InvalidateField(ctx context.Context, fieldID string) error
}

// Transformer интерфейс нормализации сырых данных бэкенда
type Transformer interface {
	ParseInstants(raw []string) domain.BookedSlotSet
	Reservation(p *sahaapi.ReservationPayload) (*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
