package get_field_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews"
)

const (
	msgMissingFieldID = "отсутствует ID поля"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/reviews
// Эндпоинт публичный: сессия опциональна и нужна только для флага isMine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]
	if fieldID == "" {
		h.logger.Warn("GET /fields/{id}/reviews - Missing field ID")
		handlers.RespondBadRequest(w, msgMissingFieldID)
		return
	}

	currentUserID := ""
	if sess, ok := middleware.GetSession(r); ok {
		currentUserID = sess.UserID
	}

	result, err := h.service.ListFieldReviews(r.Context(), fieldID, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/reviews - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /fields/{id}/reviews - Failed: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/reviews - Returned %d reviews for field_id=%s", result.Total, fieldID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
