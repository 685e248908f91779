package transform

import (
	"encoding/json"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
)

// fallbackAuthorName подставляется, когда связь с автором отсутствует.
const fallbackAuthorName = "Аноним"

// Review нормализует документ отзыва. Битая метка времени не должна ронять
// рендеринг - подставляем "сегодня" (момент вызова).
func (t *Transformer) Review(p *sahaapi.ReviewPayload, now time.Time) domain.Review {
	review := domain.Review{
		ID:         p.ID,
		FieldID:    p.FieldID,
		AuthorName: fallbackAuthorName,
		CreatedAt:  now,
	}

	if p.UserID != nil {
		review.UserID = *p.UserID
	}
	if p.User != nil {
		if review.UserID == "" {
			review.UserID = p.User.ID
		}
		if p.User.Name != nil && *p.User.Name != "" {
			review.AuthorName = *p.User.Name
		}
	}
	if p.Rating != nil {
		review.Rating = *p.Rating
	}
	if p.Comment != nil {
		review.Comment = *p.Comment
	}
	if p.CreatedAt != nil {
		if createdAt, err := time.Parse(time.RFC3339, *p.CreatedAt); err == nil {
			review.CreatedAt = createdAt
		} else {
			t.log.Warn("transform: review id=%s has malformed createdAt %q", p.ID, *p.CreatedAt)
		}
	}

	return review
}

// Reviews нормализует сырой список отзывов; тотальна по той же схеме,
// что и Fields.
func (t *Transformer) Reviews(raw json.RawMessage, now time.Time) []domain.Review {
	reviews := make([]domain.Review, 0)

	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		t.log.Warn("transform: review list payload is not an array, returning empty list")
		return reviews
	}

	for i, item := range items {
		var payload sahaapi.ReviewPayload
		if err := json.Unmarshal(item, &payload); err != nil || payload.ID == "" {
			t.log.Warn("transform: skipping malformed review entry at index %d", i)
			continue
		}
		reviews = append(reviews, t.Review(&payload, now))
	}

	return reviews
}
