package reservations

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// SahaAPIClient интерфейс клиента Saha API для работы с бронированиями
type SahaAPIClient interface {
	GetReservation(ctx context.Context, token, reservationID string) (*sahaapi.ReservationPayload, error)
	ListUserReservations(ctx context.Context, token string) (json.RawMessage, error)
	UpdateReservation(ctx context.Context, token, reservationID string, req *sahaapi.UpdateReservationRequest) (*sahaapi.ReservationPayload, error)
}

// ReservationCache интерфейс кеша бронирований
type ReservationCache interface {
	GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	SetReservation(ctx context.Context, reservation *domain.Reservation) error
	GetUserReservations(ctx context.Context, userID string) ([]domain.Reservation, error)
	SetUserReservations(ctx context.Context, userID string, reservations []domain.Reservation) error
	ReplaceReservation(ctx context.Context, reservation *domain.Reservation) error
	InvalidateField(ctx context.Context, fieldID string) error
}

// Transformer интерфейс нормализации сырых данных бэкенда
type Transformer interface {
	Reservation(p *sahaapi.ReservationPayload) (*domain.Reservation, error)
	Reservations(raw json.RawMessage) []domain.Reservation
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
