package domain

// Default schedule values, matching the shop's historical working hours.
const (
	DefaultOpenHour            = 8
	DefaultCloseHour           = 18
	DefaultSlotIntervalMinutes = 30
	DefaultShortDayCloseHour   = 14
	DefaultBookingWindowDays   = 30
)

// Business validation constants
const (
	MinContactDigits = 11 // full Brazilian mobile number: DDD + 9 digits
	MaxClientNameLen = 120
)

// DateFormat is the calendar-day layout used in the API and the snapshot file.
const DateFormat = "2006-01-02" // YYYY-MM-DD
