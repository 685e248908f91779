package cancel_reservation

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
)

type ReservationService interface {
	Cancel(ctx context.Context, sess *session.Session, reservationID string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
