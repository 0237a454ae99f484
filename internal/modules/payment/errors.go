package payment

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrRefundExceeds   = errors.New("refund amount exceeds payment amount")
)
