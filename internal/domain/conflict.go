package domain

import (
	"fmt"
	"time"
)

// ValidateSlot is the single client-side answer to "can this booking be
// submitted". It is deliberately re-run at submission time even when the UI
// already hid booked slots: the field's booked set may have changed since page
// load. The backend remains the final authority; this is the last check before
// a network call.
//
// The same routine backs the advisory pre-flight check, which only differs in
// running against a freshly fetched booked set.
func ValidateSlot(slot TimeSlot, booked BookedSlotSet, now time.Time, loc *time.Location) error {
	if slot.Date.IsZero() || slot.Hour.IsZero() {
		return ErrSelectionIncomplete
	}

	instant, err := slot.Instant(loc)
	if err != nil {
		return err
	}

	// A slot must be strictly in the future; equality to now is rejected too.
	if !instant.After(now) {
		return fmt.Errorf("%w: %s %s", ErrPastSlot, slot.Date.In(loc).Format(DateFormat), slot.Hour)
	}

	if booked.Contains(instant) {
		return fmt.Errorf("%w: %s %s", ErrSlotTaken, slot.Date.In(loc).Format(DateFormat), slot.Hour)
	}

	return nil
}

// CanCancel reports whether a reservation may still be cancelled by the
// client: only pending reservations, and only while the reserved instant is
// strictly in the future and at least noticeHours away.
func CanCancel(status ReservationStatus, instant, now time.Time, noticeHours int) bool {
	if status != StatusPending {
		return false
	}
	if !instant.After(now) {
		return false
	}
	return instant.Sub(now) >= time.Duration(noticeHours)*time.Hour
}

// CanEdit reports whether a reservation may still be edited by the client.
// Same shape as CanCancel with a wider notice window.
func CanEdit(status ReservationStatus, instant, now time.Time, noticeHours int) bool {
	return CanCancel(status, instant, now, noticeHours)
}
