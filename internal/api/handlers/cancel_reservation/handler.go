package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reservations"
)

const (
	msgMissingReservationID = "отсутствует ID бронирования"
	msgMissingSession       = "требуется авторизация"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "бронирование нельзя отменить"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]
	if reservationID == "" {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingReservationID)
		return
	}

	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	cancelled, err := h.service.Cancel(r.Context(), sess, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%s, user_id=%s",
				reservationID, sess.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, reservations.ErrBackendRejected):
			// Сообщение бэкенда отдаем дословно
			h.logger.Warn("PATCH /reservations/{id}/cancel - Backend rejected: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondError(w, http.StatusBadGateway, sahaapi.Message(err))

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%s, user_id=%s",
		reservationID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, cancelled)
}
