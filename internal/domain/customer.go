package domain

import "time"

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`

	Nationality string `json:"nationality,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`

	IsVip bool `json:"is_vip"`

	IsBlacklisted   bool   `json:"is_blacklisted"`
	BlacklistReason string `json:"blacklist_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName derives the presentation name from the fields it needs instead
// of reading through a loaded relation, so callers stay free of hidden I/O.
func DisplayName(firstName string, isVip bool) string {
	if firstName == "" {
		firstName = "Unknown Guest"
	}
	if isVip {
		return firstName + " (VIP)"
	}
	return firstName
}

type NoteType string

const (
	NoteGeneral        NoteType = "general"
	NoteComplaint      NoteType = "complaint"
	NoteCompliment     NoteType = "compliment"
	NoteSpecialRequest NoteType = "special_request"
	NoteDietary        NoteType = "dietary"
	NoteAccessibility  NoteType = "accessibility"
	NoteBilling        NoteType = "billing"
)

type NotePriority string

const (
	PriorityLow    NotePriority = "low"
	PriorityNormal NotePriority = "normal"
	PriorityHigh   NotePriority = "high"
	PriorityUrgent NotePriority = "urgent"
)

// CustomerNote is a staff-authored note on a guest record.
type CustomerNote struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id" validate:"required"`
	Note       string `json:"note" validate:"required,max=2000"`
	CreatedBy  string `json:"created_by" validate:"required"`

	NoteType NoteType     `json:"note_type"`
	Priority NotePriority `json:"priority"`

	IsImportant    bool `json:"is_important"`
	RequiresAction bool `json:"requires_action"`
	ActionDone     bool `json:"action_done"`

	CreatedAt time.Time `json:"created_at"`
}
