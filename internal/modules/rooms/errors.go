package rooms

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrRoomNotFound     = errors.New("room not found")
	ErrDuplicateNumber  = errors.New("room number already in use")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrInvalidDates     = errors.New("check-out date must be after check-in date")
)
