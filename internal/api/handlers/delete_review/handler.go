package delete_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
)

const (
	msgMissingSession  = "требуется авторизация"
	msgMissingReviewID = "отсутствует ID отзыва"
	msgMissingFieldID  = "отсутствует ID поля"
	msgReviewNotFound  = "отзыв не найден"
	msgForbidden       = "можно удалять только свои отзывы"
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

// Handle DELETE /api/v1/reviews/{reviewId}?fieldId=...
// ID поля передается query-параметром: он нужен для локальной проверки
// владения и сброса кеша отзывов поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewId"]
	if reviewID == "" {
		h.logger.Warn("DELETE /reviews/{id} - Missing review ID")
		handlers.RespondBadRequest(w, msgMissingReviewID)
		return
	}

	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("DELETE /reviews/{id} - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	fieldID := r.URL.Query().Get("fieldId")
	if fieldID == "" {
		h.logger.Warn("DELETE /reviews/{id} - Missing field ID")
		handlers.RespondBadRequest(w, msgMissingFieldID)
		return
	}

	err := h.service.Delete(r.Context(), &models.DeleteReviewRequest{
		Session:  sess,
		ReviewID: reviewID,
		FieldID:  fieldID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound), errors.Is(err, reviews.ErrFieldNotFound):
			h.logger.Warn("DELETE /reviews/{id} - Review not found: review_id=%s", reviewID)
			handlers.RespondNotFound(w, msgReviewNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("DELETE /reviews/{id} - Access denied: review_id=%s, user_id=%s", reviewID, sess.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reviews.ErrBackendRejected):
			// Сообщение бэкенда отдаем дословно
			h.logger.Warn("DELETE /reviews/{id} - Backend rejected: review_id=%s, error=%v", reviewID, err)
			handlers.RespondError(w, http.StatusBadGateway, sahaapi.Message(err))

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed: review_id=%s, user_id=%s, error=%v",
				reviewID, sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted: review_id=%s, user_id=%s", reviewID, sess.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
