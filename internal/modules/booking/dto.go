package booking

import "time"

type CreateBookingRequest struct {
	RoomID          int64     `json:"room_id" binding:"required"`
	CustomerID      int64     `json:"customer_id" binding:"required"`
	CheckInDate     time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate    time.Time `json:"check_out_date" binding:"required"`
	GuestCount      int       `json:"guest_count" binding:"required,min=1"`
	ChildrenCount   int       `json:"children_count"`
	BookingSource   string    `json:"booking_source"`
	IsRefundable    *bool     `json:"is_refundable"`
	SpecialRequests string    `json:"special_requests"`
}

type UpdateBookingRequest struct {
	GuestCount      int    `json:"guest_count" binding:"required,min=1"`
	ChildrenCount   int    `json:"children_count"`
	SpecialRequests string `json:"special_requests"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type CancellationPreview struct {
	Allowed       bool    `json:"allowed"`
	RefundPercent float64 `json:"refund_percent"`
}
