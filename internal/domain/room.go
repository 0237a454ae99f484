package domain

import "time"

type RoomType string

const (
	RoomStandard RoomType = "Standard"
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
	RoomFamily   RoomType = "Family"
)

func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomStandard, RoomDeluxe, RoomSuite, RoomFamily:
		return true
	}
	return false
}

type Room struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	RoomType    RoomType `json:"room_type" validate:"required"`
	RoomNumber  int      `json:"room_number" validate:"required,gt=0"`
	Floor       int      `json:"floor"`
	Capacity    int      `json:"capacity" validate:"required,gt=0"`

	BasePrice    float64  `json:"base_price" validate:"required,gt=0"`
	DynamicPrice *float64 `json:"dynamic_price,omitempty"`

	// IsAvailable is an inventory flag (maintenance, decommissioned rooms).
	// It is independent of date-range booking conflicts and is never toggled
	// by booking state changes.
	IsAvailable bool `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentPrice is the effective nightly rate: dynamic override when set,
// else the base rate.
func (r *Room) CurrentPrice() float64 {
	if r.DynamicPrice != nil {
		return *r.DynamicPrice
	}
	return r.BasePrice
}
