package domain

import "errors"

var (
	// ErrInvalidHourLabel is returned when an hour label does not belong to
	// the fixed bookable day grid.
	ErrInvalidHourLabel = errors.New("hour label outside the bookable grid")

	// ErrSelectionIncomplete is returned when a slot is validated before both
	// its date and hour are chosen.
	ErrSelectionIncomplete = errors.New("slot selection incomplete")

	// ErrPastSlot is returned when the selected slot is not strictly in the
	// future.
	ErrPastSlot = errors.New("slot is in the past")

	// ErrSlotTaken is returned when the selected slot is already booked.
	ErrSlotTaken = errors.New("slot already booked")
)
