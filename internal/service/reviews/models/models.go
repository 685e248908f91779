package models

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/session"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Session *session.Session
	FieldID string
	Rating  int
	Comment string
}

// UpdateReviewRequest запрос на изменение отзыва.
// FieldID нужен для локальной проверки владения до похода на бэкенд.
type UpdateReviewRequest struct {
	Session  *session.Session
	ReviewID string
	FieldID  string
	Rating   *int
	Comment  *string
}

// DeleteReviewRequest запрос на удаление отзыва
type DeleteReviewRequest struct {
	Session  *session.Session
	ReviewID string
	FieldID  string
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         string `json:"id"`
	FieldID    string `json:"fieldId"`
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	IsMine     bool   `json:"isMine"` // Отзыв принадлежит текущему пользователю
}

// ReviewListResponse ответ со списком отзывов поля
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

// FromDomainReview конвертирует domain отзыв в response.
// currentUserID может быть пустым для анонимного запроса.
func FromDomainReview(r *domain.Review, currentUserID string) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		FieldID:    r.FieldID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		IsMine:     currentUserID != "" && r.IsOwnedBy(currentUserID),
	}
}

// FromDomainReviewList конвертирует список domain отзывов в response
func FromDomainReviewList(list []domain.Review, currentUserID string) *ReviewListResponse {
	reviews := make([]ReviewResponse, 0, len(list))
	for i := range list {
		reviews = append(reviews, *FromDomainReview(&list[i], currentUserID))
	}
	return &ReviewListResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}
}
