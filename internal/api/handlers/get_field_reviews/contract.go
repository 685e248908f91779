package get_field_reviews

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
)

type ReviewService interface {
	ListFieldReviews(ctx context.Context, fieldID string, currentUserID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
