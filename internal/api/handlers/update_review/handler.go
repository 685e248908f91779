package update_review

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "требуется авторизация"
	msgMissingReviewID    = "отсутствует ID отзыва"
	msgMissingFieldID     = "отсутствует ID поля"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgEmptyComment       = "текст отзыва не может быть пустым"
	msgCommentTooLong     = "текст отзыва слишком длинный"
	msgReviewNotFound     = "отзыв не найден"
	msgForbidden          = "можно изменять только свои отзывы"
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

// UpdateReviewRequest HTTP request model
type UpdateReviewRequest struct {
	FieldID string  `json:"fieldId"`
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// Handle PUT /api/v1/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewId"]
	if reviewID == "" {
		h.logger.Warn("PUT /reviews/{id} - Missing review ID")
		handlers.RespondBadRequest(w, msgMissingReviewID)
		return
	}

	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("PUT /reviews/{id} - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req UpdateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reviews/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.FieldID == "" {
		h.logger.Warn("PUT /reviews/{id} - Missing field ID")
		handlers.RespondBadRequest(w, msgMissingFieldID)
		return
	}

	review, err := h.service.Update(r.Context(), &models.UpdateReviewRequest{
		Session:  sess,
		ReviewID: reviewID,
		FieldID:  req.FieldID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		h.respondError(w, reviewID, sess.UserID, err)
		return
	}

	h.logger.Info("PUT /reviews/{id} - Review updated: review_id=%s, user_id=%s", reviewID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, review)
}

func (h *Handler) respondError(w http.ResponseWriter, reviewID, userID string, err error) {
	switch {
	case errors.Is(err, reviews.ErrInvalidRating):
		h.logger.Warn("PUT /reviews/{id} - Invalid rating: review_id=%s", reviewID)
		handlers.RespondBadRequest(w, msgInvalidRating)

	case errors.Is(err, reviews.ErrEmptyComment):
		h.logger.Warn("PUT /reviews/{id} - Empty comment: review_id=%s", reviewID)
		handlers.RespondBadRequest(w, msgEmptyComment)

	case errors.Is(err, reviews.ErrCommentTooLong):
		h.logger.Warn("PUT /reviews/{id} - Comment too long: review_id=%s", reviewID)
		handlers.RespondBadRequest(w, msgCommentTooLong)

	case errors.Is(err, reviews.ErrReviewNotFound), errors.Is(err, reviews.ErrFieldNotFound):
		h.logger.Warn("PUT /reviews/{id} - Review not found: review_id=%s", reviewID)
		handlers.RespondNotFound(w, msgReviewNotFound)

	case errors.Is(err, reviews.ErrAccessDenied):
		h.logger.Warn("PUT /reviews/{id} - Access denied: review_id=%s, user_id=%s", reviewID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, reviews.ErrBackendRejected):
		// Сообщение бэкенда отдаем дословно
		h.logger.Warn("PUT /reviews/{id} - Backend rejected: review_id=%s, error=%v", reviewID, err)
		handlers.RespondError(w, http.StatusBadGateway, sahaapi.Message(err))

	default:
		h.logger.Error("PUT /reviews/{id} - Failed: review_id=%s, user_id=%s, error=%v", reviewID, userID, err)
		handlers.RespondInternalError(w)
	}
}
