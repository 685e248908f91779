package get_user_reservations

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, sess *session.Session) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
