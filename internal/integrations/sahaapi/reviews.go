package sahaapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListFieldReviews получает отзывы поля сырым JSON-ом.
func (c *Client) ListFieldReviews(ctx context.Context, fieldID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_field_reviews", http.MethodGet, "/api/fields/"+fieldID+"/reviews", "", nil, nil, &raw, true); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateReview создает отзыв. Мутация: без повторов.
func (c *Client) CreateReview(ctx context.Context, token string, req *CreateReviewRequest) (*ReviewPayload, error) {
	var created ReviewPayload
	if err := c.do(ctx, "create_review", http.MethodPost, "/api/reviews", token, req, nil, &created, false); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview изменяет отзыв. Владение проверяется и на клиенте, и на бэкенде.
func (c *Client) UpdateReview(ctx context.Context, token, reviewID string, req *UpdateReviewRequest) (*ReviewPayload, error) {
	var updated ReviewPayload
	if err := c.do(ctx, "update_review", http.MethodPut, "/api/reviews/"+reviewID, token, req, nil, &updated, false); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview удаляет отзыв.
func (c *Client) DeleteReview(ctx context.Context, token, reviewID string) error {
	return c.do(ctx, "delete_review", http.MethodDelete, "/api/reviews/"+reviewID, token, nil, nil, nil, false)
}
