package reviews

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// SahaAPIClient интерфейс клиента Saha API для работы с отзывами
type SahaAPIClient interface {
	ListFieldReviews(ctx context.Context, fieldID string) (json.RawMessage, error)
	CreateReview(ctx context.Context, token string, req *sahaapi.CreateReviewRequest) (*sahaapi.ReviewPayload, error)
	UpdateReview(ctx context.Context, token, reviewID string, req *sahaapi.UpdateReviewRequest) (*sahaapi.ReviewPayload, error)
	DeleteReview(ctx context.Context, token, reviewID string) error
}

// ReviewCache интерфейс кеша отзывов
type ReviewCache interface {
	GetFieldReviews(ctx context.Context, fieldID string) ([]domain.Review, error)
	SetFieldReviews(ctx context.Context, fieldID string, reviews []domain.Review) error
	InvalidateFieldReviews(ctx context.Context, fieldID string) error
}

// FieldCache интерфейс для сброса кешированного поля после мутаций
// (рейтинг и счетчик отзывов пересчитывает бэкенд)
type FieldCache interface {
	InvalidateField(ctx context.Context, fieldID string) error
}

// Transformer интерфейс нормализации сырых данных бэкенда
type Transformer interface {
	Review(p *sahaapi.ReviewPayload, now time.Time) domain.Review
	Reviews(raw json.RawMessage, now time.Time) []domain.Review
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
