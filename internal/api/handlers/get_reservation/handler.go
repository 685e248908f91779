package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/service/reservations"
)

const (
	msgMissingReservationID = "отсутствует ID бронирования"
	msgMissingSession       = "требуется авторизация"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	if reservationID == "" {
		h.logger.Warn("GET /reservations/{id} - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingReservationID)
		return
	}

	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("GET /reservations/{id} - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), sess, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: reservation_id=%s, user_id=%s",
				reservationID, sess.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved: reservation_id=%s, user_id=%s",
		reservationID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
