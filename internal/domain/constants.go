package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Bookable day grid: hourly slots from FirstSlotHour to LastSlotHour inclusive.
// The grid is a fixed product constant; a field that closes earlier relies on
// the availability calculation, not on this enumeration, to hide slots.
const (
	FirstSlotHour = 8
	LastSlotHour  = 23
)

// Default policy values, overridable via configuration
const (
	DefaultCancelNoticeHours     = 2
	DefaultEditNoticeHours       = 24
	DefaultPremiumPriceThreshold = 250.0
	DefaultTimezone              = "Europe/Istanbul"
)

// Review rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// MaxCommentLength limits review comment size accepted client-side.
const MaxCommentLength = 1000
