package domain

import "time"

// Review is a user review of a field. Mutations are permitted to the owning
// user only; ownership is checked by comparing user identifiers before any
// network call is attempted.
type Review struct {
	ID         string
	FieldID    string
	UserID     string
	AuthorName string
	Rating     int // 1..5
	Comment    string
	CreatedAt  time.Time
}

// IsOwnedBy reports whether the acting user authored the review.
func (r *Review) IsOwnedBy(userID string) bool {
	return userID != "" && r.UserID == userID
}

// IsValidRating reports whether the rating is an integer in [MinRating, MaxRating].
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
