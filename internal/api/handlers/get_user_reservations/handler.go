package get_user_reservations

import (
	"net/http"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
)

const msgMissingSession = "требуется авторизация"

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

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("GET /reservations - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), sess)
	if err != nil {
		h.logger.Error("GET /reservations - Failed: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Returned %d reservations for user_id=%s", result.Total, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
