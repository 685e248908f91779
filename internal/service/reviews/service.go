package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
)

// Service сервис для работы с отзывами.
// Мутации проходят локальную проверку владения до похода на бэкенд:
// чужой отзыв отклоняется без сетевого вызова.
type Service struct {
	client       SahaAPIClient
	reviewCache  ReviewCache
	fieldCache   FieldCache
	transformer  Transformer
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	client SahaAPIClient,
	reviewCache ReviewCache,
	fieldCache FieldCache,
	transformer Transformer,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		reviewCache:  reviewCache,
		fieldCache:   fieldCache,
		transformer:  transformer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListFieldReviews получает отзывы поля (кеш, затем бэкенд)
func (s *Service) ListFieldReviews(ctx context.Context, fieldID string, currentUserID string) (*models.ReviewListResponse, error) {
	list, err := s.fetchFieldReviews(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReviewList(list, currentUserID), nil
}

// Create создает отзыв
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: user=%s creating review for field=%s", req.Session.UserID, req.FieldID)

	if err := validateReviewContent(req.Rating, req.Comment); err != nil {
		s.logger.Warn("Create: validation failed for user=%s: %v", req.Session.UserID, err)
		return nil, err
	}

	payload, err := s.client.CreateReview(ctx, req.Session.Token, &sahaapi.CreateReviewRequest{
		UserID:  req.Session.UserID,
		FieldID: req.FieldID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})
	if err != nil {
		s.logger.Warn("Create: backend rejected review for user=%s: %v", req.Session.UserID, err)
		return nil, s.mapBackendError(err)
	}

	review := s.transformer.Review(payload, s.timeProvider.Now())
	s.invalidate(ctx, req.FieldID)

	s.logger.Info("Create: successfully created review id=%s for field=%s", review.ID, req.FieldID)
	return models.FromDomainReview(&review, req.Session.UserID), nil
}

// Update изменяет отзыв. Только автор может изменить свой отзыв.
func (s *Service) Update(ctx context.Context, req *models.UpdateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Update: user=%s updating review id=%s", req.Session.UserID, req.ReviewID)

	if err := s.checkOwnership(ctx, req.Session, req.FieldID, req.ReviewID); err != nil {
		return nil, err
	}

	rating := req.Rating
	if rating != nil && !domain.IsValidRating(*rating) {
		return nil, ErrInvalidRating
	}
	comment := req.Comment
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if err := validateComment(trimmed); err != nil {
			return nil, err
		}
		comment = &trimmed
	}

	payload, err := s.client.UpdateReview(ctx, req.Session.Token, req.ReviewID, &sahaapi.UpdateReviewRequest{
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		s.logger.Warn("Update: backend rejected update of review id=%s: %v", req.ReviewID, err)
		return nil, s.mapBackendError(err)
	}

	review := s.transformer.Review(payload, s.timeProvider.Now())
	s.invalidate(ctx, req.FieldID)

	s.logger.Info("Update: successfully updated review id=%s", req.ReviewID)
	return models.FromDomainReview(&review, req.Session.UserID), nil
}

// Delete удаляет отзыв. Только автор может удалить свой отзыв.
func (s *Service) Delete(ctx context.Context, req *models.DeleteReviewRequest) error {
	s.logger.Info("Delete: user=%s deleting review id=%s", req.Session.UserID, req.ReviewID)

	if err := s.checkOwnership(ctx, req.Session, req.FieldID, req.ReviewID); err != nil {
		return err
	}

	if err := s.client.DeleteReview(ctx, req.Session.Token, req.ReviewID); err != nil {
		s.logger.Warn("Delete: backend rejected deletion of review id=%s: %v", req.ReviewID, err)
		return s.mapBackendError(err)
	}

	s.invalidate(ctx, req.FieldID)

	s.logger.Info("Delete: successfully deleted review id=%s", req.ReviewID)
	return nil
}

// fetchFieldReviews читает отзывы поля из кеша, при промахе - с бэкенда
func (s *Service) fetchFieldReviews(ctx context.Context, fieldID string) ([]domain.Review, error) {
	cached, err := s.reviewCache.GetFieldReviews(ctx, fieldID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("fetchFieldReviews: cache error for field=%s: %v", fieldID, err)
	}

	raw, err := s.client.ListFieldReviews(ctx, fieldID)
	if err != nil {
		if errors.Is(err, sahaapi.ErrNotFound) {
			s.logger.Warn("fetchFieldReviews: field id=%s not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("fetchFieldReviews: backend error for field=%s: %v", fieldID, err)
		return nil, fmt.Errorf("%w: fetchFieldReviews - backend error: %v", ErrInternal, err)
	}

	// Тотальная нормализация: нечитаемые записи пропускаются
	list := s.transformer.Reviews(raw, s.timeProvider.Now())
	if err := s.reviewCache.SetFieldReviews(ctx, fieldID, list); err != nil {
		s.logger.Warn("fetchFieldReviews: failed to cache reviews for field=%s: %v", fieldID, err)
	}

	return list, nil
}

// checkOwnership проверяет, что отзыв существует и принадлежит пользователю.
// Проверка выполняется по нормализованному списку отзывов поля, без
// мутирующего запроса к бэкенду.
func (s *Service) checkOwnership(ctx context.Context, sess *session.Session, fieldID, reviewID string) error {
	list, err := s.fetchFieldReviews(ctx, fieldID)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID != reviewID {
			continue
		}
		if !list[i].IsOwnedBy(sess.UserID) {
			s.logger.Warn("checkOwnership: user=%s is not the author of review id=%s", sess.UserID, reviewID)
			return ErrAccessDenied
		}
		return nil
	}

	s.logger.Warn("checkOwnership: review id=%s not found on field=%s", reviewID, fieldID)
	return ErrReviewNotFound
}

// invalidate сбрасывает кеши отзывов и поля: рейтинг и счетчик
// отзывов пересчитывает бэкенд
func (s *Service) invalidate(ctx context.Context, fieldID string) {
	if err := s.reviewCache.InvalidateFieldReviews(ctx, fieldID); err != nil {
		s.logger.Warn("invalidate: failed to invalidate reviews cache for field=%s: %v", fieldID, err)
	}
	if err := s.fieldCache.InvalidateField(ctx, fieldID); err != nil {
		s.logger.Warn("invalidate: failed to invalidate field cache id=%s: %v", fieldID, err)
	}
}

// mapBackendError конвертирует ошибку бэкенда в ошибку сервиса.
// Исходная ошибка остается в цепочке: хендлер достает из нее
// дословное сообщение бэкенда для показа пользователю.
func (s *Service) mapBackendError(err error) error {
	switch {
	case errors.Is(err, sahaapi.ErrNotFound):
		return ErrReviewNotFound
	case errors.Is(err, sahaapi.ErrUnauthorized):
		return ErrAccessDenied
	default:
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}
}

// validateReviewContent валидирует оценку и текст отзыва
func validateReviewContent(rating int, comment string) error {
	if !domain.IsValidRating(rating) {
		return ErrInvalidRating
	}
	return validateComment(strings.TrimSpace(comment))
}

// validateComment валидирует текст отзыва
func validateComment(comment string) error {
	if comment == "" {
		return ErrEmptyComment
	}
	if len([]rune(comment)) > domain.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}
