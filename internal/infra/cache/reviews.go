package cache

import (
	"context"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

const cacheNameReviewList = "review_list"

func fieldReviewsKey(fieldID string) string {
	return "reviews:field:" + fieldID
}

// GetFieldReviews читает закешированные отзывы поля. Используется как
// best-effort fallback, когда бэкенд недоступен: свежесть меняем на
// доступность.
func (c *Cache) GetFieldReviews(ctx context.Context, fieldID string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.get(ctx, cacheNameReviewList, fieldReviewsKey(fieldID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetFieldReviews сохраняет отзывы поля
func (c *Cache) SetFieldReviews(ctx context.Context, fieldID string, reviews []domain.Review) error {
	return c.set(ctx, fieldReviewsKey(fieldID), reviews, c.reviewTTL)
}

// InvalidateFieldReviews сбрасывает отзывы поля
func (c *Cache) InvalidateFieldReviews(ctx context.Context, fieldID string) error {
	return c.del(ctx, fieldReviewsKey(fieldID))
}
