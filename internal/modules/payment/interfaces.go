package payment

import (
	"context"
	"time"

	"serenityhaven/internal/domain"
)

// PaymentRepository defines the storage interface for payments
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, message string) error
	RecordRefund(ctx context.Context, id int64, amount float64, reason string, status domain.PaymentStatus, at time.Time) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
}

// BookingReader resolves the booking a payment is recorded against.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
