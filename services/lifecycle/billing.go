package lifecycle

import (
	"math"
	"time"
)

// StayNights converts a planned date range into billable nights using a
// calendar-day ceiling: a stay crossing any fraction of a day counts as a
// full night, and the result is never below one.
func StayNights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		return 1
	}
	return nights
}
