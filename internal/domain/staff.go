package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Staff is a hotel employee account used to authenticate against the
// API. Guests never log in; bookings are taken by staff.
type Staff struct {
	ID           int64  `json:"id"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name" validate:"required"`
	Role         string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleStaff
}
