package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_NumberOfNights(t *testing.T) {
	b := &Booking{
		CheckInDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, b.NumberOfNights())
}

func TestBooking_ValidDates(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	b := &Booking{CheckInDate: day, CheckOutDate: day.AddDate(0, 0, 1)}
	assert.True(t, b.ValidDates())

	b = &Booking{CheckInDate: day, CheckOutDate: day}
	assert.False(t, b.ValidDates())

	b = &Booking{CheckInDate: day, CheckOutDate: day.AddDate(0, 0, -1)}
	assert.False(t, b.ValidDates())
}

func TestBooking_Overlaps_HalfOpenIntervals(t *testing.T) {
	b := &Booking{
		CheckInDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	}

	// New stay starting on the existing check-out day does not conflict.
	assert.False(t, b.Overlaps(
		time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
	))

	// New stay ending on the existing check-in day does not conflict.
	assert.False(t, b.Overlaps(
		time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	))

	// One shared night conflicts.
	assert.True(t, b.Overlaps(
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	))

	// Containment conflicts.
	assert.True(t, b.Overlaps(
		time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	))
}

func TestBooking_StatusHelpers(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: BookingConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: BookingCheckedIn}).CanBeCancelled())
	assert.False(t, (&Booking{Status: BookingCancelled}).CanBeCancelled())

	assert.True(t, (&Booking{Status: BookingConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: BookingCheckedIn}).IsActive())
	assert.False(t, (&Booking{Status: BookingPending}).IsActive())

	assert.True(t, (&Booking{Status: BookingCheckedOut}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingNoShow}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingConfirmed}).IsTerminal())
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 6, 1, 18, 45, 12, 999, time.FixedZone("UTC+5", 5*3600))
	got := Midnight(in)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	// A local time that is already past midnight UTC the next day.
	in = time.Date(2024, 6, 1, 1, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), Midnight(in))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Amelia", DisplayName("Amelia", false))
	assert.Equal(t, "Amelia (VIP)", DisplayName("Amelia", true))
	assert.Equal(t, "Unknown Guest", DisplayName("", false))
	assert.Equal(t, "Unknown Guest (VIP)", DisplayName("", true))
}
