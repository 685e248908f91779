package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// TimeSlot is an hourly bookable unit: a calendar date plus an hour label
// from the fixed day grid. It always resolves to a single absolute instant
// in the configured location before any comparison or transmission.
type TimeSlot struct {
	Date time.Time
	Hour types.TimeString
}

// Instant resolves the slot to its absolute instant in loc.
func (s TimeSlot) Instant(loc *time.Location) (time.Time, error) {
	return ToInstant(s.Date, s.Hour, loc)
}

// HourLabels returns the fixed enumeration of bookable hour labels
// ("08:00" through "23:00", hourly).
func HourLabels() []types.TimeString {
	labels := make([]types.TimeString, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		labels = append(labels, types.TimeString(fmt.Sprintf("%02d:00", h)))
	}
	return labels
}

// IsValidHourLabel reports whether label belongs to the fixed day grid.
func IsValidHourLabel(label types.TimeString) bool {
	h, err := label.Hour()
	if err != nil {
		return false
	}
	m, _ := label.Minutes()
	return m%60 == 0 && h >= FirstSlotHour && h <= LastSlotHour
}

// ToInstant resolves (date, hour label) to an absolute instant in loc.
// Seconds and sub-second components are zeroed; the conversion is
// deterministic, a slot never shifts across a day boundary.
func ToInstant(date time.Time, hour types.TimeString, loc *time.Location) (time.Time, error) {
	if !IsValidHourLabel(hour) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidHourLabel, hour)
	}
	minutes, err := hour.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidHourLabel, hour)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}

// FromInstant is the inverse of ToInstant: it truncates the instant (viewed
// in loc) to a calendar date for grouping and an HH:MM label for display.
func FromInstant(instant time.Time, loc *time.Location) (time.Time, types.TimeString) {
	local := instant.In(loc)
	y, m, d := local.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return date, types.NewTimeString(local)
}

// SameDate reports whether two instants fall on the same calendar date in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// BookedSlotSet is the collection of absolute instants already reserved for a
// field. Membership is by absolute-instant equality, never by string equality:
// two textual representations of the same instant must compare equal.
type BookedSlotSet []time.Time

// Contains reports whether the exact instant is already booked.
func (s BookedSlotSet) Contains(instant time.Time) bool {
	for _, booked := range s {
		if booked.Equal(instant) {
			return true
		}
	}
	return false
}

// OnDate returns the booked instants falling on the given calendar date in
// loc, in chronological order.
func (s BookedSlotSet) OnDate(date time.Time, loc *time.Location) BookedSlotSet {
	matched := make(BookedSlotSet, 0)
	for _, booked := range s {
		if SameDate(booked, date, loc) {
			matched = append(matched, booked)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Before(matched[j]) })
	return matched
}

// Labels maps the instants to their hour labels in loc, preserving order.
func (s BookedSlotSet) Labels(loc *time.Location) []types.TimeString {
	labels := make([]types.TimeString, 0, len(s))
	for _, booked := range s {
		_, label := FromInstant(booked, loc)
		labels = append(labels, label)
	}
	return labels
}
