package domain

import "github.com/m04kA/HSB-ReservationService/pkg/types"

// Amenities are the boolean feature flags of a field. Absent flags normalize
// to false, never to an unset state.
type Amenities struct {
	Shower   bool
	Parking  bool
	Cafe     bool
	Lighting bool
	Lockers  bool
}

// Field is a bookable venue. The backend owns it; the client holds a
// read-mostly normalized copy keyed by ID, invalidated after any successful
// booking mutation on that field.
type Field struct {
	ID           string
	Name         string
	Location     string
	Description  string
	PricePerHour float64
	OpenHour     types.TimeString
	CloseHour    types.TimeString
	Rating       float64
	ReviewCount  int
	Images       []string
	Amenities    Amenities
	IsPremium    bool
	BookedSlots  BookedSlotSet
}

// CountAvailable approximates the remaining hourly capacity of a generic day:
// (close - open) minus the booked count, floored at zero. It does not bucket
// booked instants by date, so it is card-level display data, not a
// submission-time check. Unparsable operating hours yield ok=false.
func CountAvailable(openHour, closeHour types.TimeString, bookedCount int) (int, bool) {
	open, err := openHour.Hour()
	if err != nil {
		return 0, false
	}
	closing, err := closeHour.Hour()
	if err != nil {
		return 0, false
	}
	total := closing - open
	if total < 0 {
		return 0, false
	}
	free := total - bookedCount
	if free < 0 {
		free = 0
	}
	return free, true
}
