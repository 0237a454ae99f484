package payment

import (
	"context"
	"errors"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	payments PaymentRepository
	bookings BookingReader

	now func() time.Time
}

func NewService(payments PaymentRepository, bookings BookingReader) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		now:      time.Now,
	}
}

// RecordPayment stores a payment attempt against an existing booking.
// Payments start in pending; gateway callbacks move them onward.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	txID := req.TransactionID
	if txID == "" {
		txID = uuid.NewString()
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	p := &domain.Payment{
		BookingID:     b.ID,
		CustomerID:    b.CustomerID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        domain.PaymentPending,
		TransactionID: txID,
		Currency:      currency,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, message string) (*domain.Payment, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	if _, err := s.GetPayment(ctx, id); err != nil {
		return nil, err
	}

	if err := s.payments.UpdateStatus(ctx, id, status, message); err != nil {
		return nil, err
	}
	return s.GetPayment(ctx, id)
}

// RecordRefund registers a refund against a payment. A refund equal to
// the payment amount marks it refunded, anything less marks it
// partially_refunded.
func (s *Service) RecordRefund(ctx context.Context, id int64, req RefundRequest) (*domain.Payment, error) {
	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount > p.Amount {
		return nil, ErrRefundExceeds
	}

	status := domain.PaymentPartiallyRefunded
	if req.Amount == p.Amount {
		status = domain.PaymentRefunded
	}

	if err := s.payments.RecordRefund(ctx, id, req.Amount, req.Reason, status, s.now().UTC()); err != nil {
		return nil, err
	}
	return s.GetPayment(ctx, id)
}

func (s *Service) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	return s.payments.ListByBooking(ctx, bookingID)
}
