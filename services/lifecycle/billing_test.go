package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStayNights(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 9, d, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three full days", day(1, 0), day(4, 0), 3},
		{"one full day", day(1, 0), day(2, 0), 1},
		{"same day stay still bills one night", day(1, 14), day(1, 20), 1},
		{"two days and one hour rounds up", day(1, 12), day(3, 13), 3},
		{"zero duration floors at one", day(1, 0), day(1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StayNights(tt.checkIn, tt.checkOut))
		})
	}
}
