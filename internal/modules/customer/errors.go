package customer

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrBlacklisted      = errors.New("customer is blacklisted")
)
