package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
	BookingRefunded   BookingStatus = "refunded"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut,
		BookingCancelled, BookingNoShow, BookingRefunded:
		return true
	}
	return false
}

// Booking is the aggregate at the centre of the reservation engine. Rows are
// never hard-deleted; cancelled and no-show bookings stay for history.
type Booking struct {
	ID         int64 `json:"id"`
	RoomID     int64 `json:"room_id" validate:"required"`
	CustomerID int64 `json:"customer_id" validate:"required"`

	CheckInDate  time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time     `json:"check_out_date" validate:"required"`
	Status       BookingStatus `json:"status"`
	TotalPrice   float64       `json:"total_price" validate:"gte=0"`

	GuestCount    int    `json:"guest_count" validate:"required,gte=1"`
	ChildrenCount int    `json:"children_count"`
	BookingSource string `json:"booking_source,omitempty"`

	IsRefundable     bool    `json:"is_refundable"`
	RefundPercentage float64 `json:"refund_percentage"`

	BookingReference string `json:"booking_reference"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	InternalNotes    string `json:"internal_notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Room     *Room     `json:"room,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// NumberOfNights assumes both dates are normalized to midnight UTC.
func (b *Booking) NumberOfNights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingConfirmed || b.Status == BookingCheckedIn
}

func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// IsTerminal reports whether no further lifecycle transition is defined.
// NoShow and Refunded are set by operational/payment processes outside the
// core and are tolerated here as pre-existing terminal values.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingCheckedOut, BookingCancelled, BookingNoShow, BookingRefunded:
		return true
	}
	return false
}

// ValidDates enforces the half-open stay invariant: check-out strictly after
// check-in.
func (b *Booking) ValidDates() bool {
	return b.CheckOutDate.After(b.CheckInDate)
}

// Overlaps applies the half-open interval rule [a1,a2) ∩ [b1,b2) ≠ ∅ iff
// a1 < b2 AND b1 < a2.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && checkIn.Before(b.CheckOutDate)
}

// Midnight normalizes a timestamp to midnight UTC; stay boundaries are dates,
// not instants.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
