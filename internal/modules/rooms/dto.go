package rooms

type CreateRoomRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	RoomType     string   `json:"room_type" binding:"required"`
	RoomNumber   int      `json:"room_number" binding:"required,min=1"`
	Floor        int      `json:"floor"`
	Capacity     int      `json:"capacity" binding:"required,min=1"`
	BasePrice    float64  `json:"base_price" binding:"required,gt=0"`
	DynamicPrice *float64 `json:"dynamic_price"`
}

type UpdateRoomRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	RoomType     string   `json:"room_type" binding:"required"`
	RoomNumber   int      `json:"room_number" binding:"required,min=1"`
	Floor        int      `json:"floor"`
	Capacity     int      `json:"capacity" binding:"required,min=1"`
	BasePrice    float64  `json:"base_price" binding:"required,gt=0"`
	DynamicPrice *float64 `json:"dynamic_price"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type PriceQuote struct {
	RoomID     int64   `json:"room_id"`
	Nights     int     `json:"nights"`
	PerNight   float64 `json:"per_night"`
	TotalPrice float64 `json:"total_price"`
}
