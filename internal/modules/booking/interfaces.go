package booking

import (
	"context"
	"time"

	"serenityhaven/internal/domain"
)

// BookingRepository defines the storage interface for bookings
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
	Cancel(ctx context.Context, id int64, refundPercent float64, reason string, at time.Time) (bool, error)
	UpdateDetails(ctx context.Context, id int64, guestCount, childrenCount int, specialRequests string) (bool, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error)
	ListByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.Booking, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	TodaysCheckIns(ctx context.Context, today time.Time) ([]domain.Booking, error)
	TodaysCheckOuts(ctx context.Context, today time.Time) ([]domain.Booking, error)
	CurrentGuests(ctx context.Context) ([]domain.Booking, error)
}

// RoomService defines what the booking lifecycle needs from the rooms module
type RoomService interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	CalculatePrice(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (float64, error)
	ValidateCapacity(ctx context.Context, roomID int64, guestCount int, isAdmin bool) error
}

// CustomerReader resolves the booking's guest for notifications
type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Notifier delivers guest-facing booking messages. Failures are logged,
// never propagated to the caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, recipient string, b *domain.Booking, room *domain.Room) error
	SendBookingCancellation(ctx context.Context, recipient string, b *domain.Booking, room *domain.Room) error
}
