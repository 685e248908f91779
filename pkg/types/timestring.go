package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the canonical HH:MM layout used across the service.
const TimeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM time.
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOverflow is returned when time arithmetic crosses the day boundary.
	ErrTimeOverflow = errors.New("time arithmetic crosses day boundary")
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// The zero value ("") means "not set".
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Hour returns the hour component (0-23).
func (t TimeString) Hour() (int, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Both values must be valid; invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight is an error: slots never span days.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	m += minutes
	if m < 0 || m >= 24*60 {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}
