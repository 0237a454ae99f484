package rooms

import (
	"context"
	"time"

	"serenityhaven/internal/domain"
)

// RoomRepository defines the storage interface for rooms
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	ListByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateAvailability(ctx context.Context, id int64, isAvailable bool) error
	Delete(ctx context.Context, id int64) error
}

// OverlapChecker answers whether a room has a blocking booking over a
// date range. The booking repository implements it.
type OverlapChecker interface {
	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
}

// RoomCache is the read-through cache in front of the room list.
type RoomCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
