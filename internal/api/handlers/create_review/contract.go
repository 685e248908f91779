package create_review

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
)

type ReviewService interface {
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
