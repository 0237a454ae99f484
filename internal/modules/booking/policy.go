package booking

import (
	"time"

	"serenityhaven/internal/domain"
)

// Policy holds the configurable cancellation thresholds. Days are
// counted from today to the booking's check-in date.
type Policy struct {
	FullRefundDays       int
	PartialRefundDays    int
	PartialRefundPercent float64
}

// Evaluate decides whether a booking may be cancelled and what refund
// percentage the guest is owed. Admins may always cancel with a full
// refund as long as the stay has not finished.
func (p Policy) Evaluate(b *domain.Booking, isAdmin bool, today time.Time) (bool, float64) {
	if b.Status == domain.BookingCancelled {
		return false, 0
	}
	if b.CheckOutDate.Before(today) {
		return false, 0
	}
	if isAdmin {
		return true, 100
	}
	if !b.IsRefundable {
		return false, 0
	}

	daysUntilCheckIn := int(b.CheckInDate.Sub(today).Hours() / 24)
	switch {
	case daysUntilCheckIn >= p.FullRefundDays:
		return true, 100
	case daysUntilCheckIn >= p.PartialRefundDays:
		return true, p.PartialRefundPercent
	default:
		return false, 0
	}
}
