package booking

import "errors"

var (
	ErrValidation             = errors.New("validation error")
	ErrInvalidDates           = errors.New("check-out date must be after check-in date")
	ErrCapacityExceeded       = errors.New("guest count exceeds room capacity")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrCustomerBlacklisted    = errors.New("customer is blacklisted")
	ErrNotAvailable           = errors.New("room not available for the selected dates")
	ErrOverbooking            = errors.New("overbooking constraint violation")
	ErrCancellationNotAllowed = errors.New("booking cannot be cancelled")
	ErrInvalidTransition      = errors.New("invalid booking status transition")
	ErrCheckInTooEarly        = errors.New("check-in date has not arrived yet")
)
