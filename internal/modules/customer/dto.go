package customer

import "serenityhaven/internal/domain"

type CreateCustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	IsVip       bool   `json:"is_vip"`
}

type UpdateCustomerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	IsVip       bool   `json:"is_vip"`
}

type BlacklistRequest struct {
	Blacklisted bool   `json:"blacklisted"`
	Reason      string `json:"reason"`
}

type AddNoteRequest struct {
	Note           string `json:"note" binding:"required,max=2000"`
	NoteType       string `json:"note_type"`
	Priority       string `json:"priority"`
	IsImportant    bool   `json:"is_important"`
	RequiresAction bool   `json:"requires_action"`
}

// CustomerView decorates a guest record with the front-desk display name.
type CustomerView struct {
	*domain.Customer
	DisplayName string `json:"display_name"`
}
