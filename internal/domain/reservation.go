package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation as
// visible to the client.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a booking record. Created optimistically client-side on
// submission, confirmed authoritatively by the backend, mirrored into the
// local cache.
type Reservation struct {
	ID             string
	UserID         string
	FieldID        string
	Instant        time.Time // absolute instant of the reserved slot
	Status         ReservationStatus
	Recurring      bool
	SubscriptionID *string

	// Denormalized sub-objects when the backend supplies them
	FieldName    string
	PricePerHour float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether no further client-visible status change exists.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusCancelled
}

// CanTransitionTo validates the one-directional client-view state machine:
// pending -> approved (backend-driven) and pending -> cancelled.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.Status != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusCancelled
}

// CanBeCancelledAt applies the cancellation policy at the given moment.
func (r *Reservation) CanBeCancelledAt(now time.Time, noticeHours int) bool {
	return CanCancel(r.Status, r.Instant, now, noticeHours)
}

// CanBeEditedAt applies the edit policy at the given moment.
func (r *Reservation) CanBeEditedAt(now time.Time, noticeHours int) bool {
	return CanEdit(r.Status, r.Instant, now, noticeHours)
}

// IsValidStatus reports whether s is one of the known lifecycle statuses.
func IsValidStatus(s ReservationStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusCancelled
}
