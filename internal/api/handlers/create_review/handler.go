package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "требуется авторизация"
	msgMissingFieldID     = "отсутствует ID поля"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgEmptyComment       = "текст отзыва не может быть пустым"
	msgCommentTooLong     = "текст отзыва слишком длинный"
	msgFieldNotFound      = "поле не найдено"
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

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	FieldID string `json:"fieldId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("POST /reviews - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.FieldID == "" {
		h.logger.Warn("POST /reviews - Missing field ID")
		handlers.RespondBadRequest(w, msgMissingFieldID)
		return
	}

	review, err := h.service.Create(r.Context(), &models.CreateReviewRequest{
		Session: sess,
		FieldID: req.FieldID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: user_id=%s, rating=%d", sess.UserID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrEmptyComment):
			h.logger.Warn("POST /reviews - Empty comment: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgEmptyComment)

		case errors.Is(err, reviews.ErrCommentTooLong):
			h.logger.Warn("POST /reviews - Comment too long: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgCommentTooLong)

		case errors.Is(err, reviews.ErrFieldNotFound), errors.Is(err, reviews.ErrReviewNotFound):
			h.logger.Warn("POST /reviews - Field not found: field_id=%s", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reviews.ErrBackendRejected):
			// Сообщение бэкенда отдаем дословно
			h.logger.Warn("POST /reviews - Backend rejected: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, sahaapi.Message(err))

		default:
			h.logger.Error("POST /reviews - Failed: user_id=%s, field_id=%s, error=%v",
				sess.UserID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%s, user_id=%s, field_id=%s",
		review.ID, sess.UserID, req.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
