package payment

import (
	"context"
	"testing"
	"time"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && args.Error(0) == nil {
		p.ID = 301
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, message string) error {
	args := m.Called(ctx, id, status, message)
	return args.Error(0)
}

func (m *MockPaymentRepository) RecordRefund(ctx context.Context, id int64, amount float64, reason string, status domain.PaymentStatus, at time.Time) error {
	args := m.Called(ctx, id, amount, reason, status, at)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestService_RecordPayment_Success(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{ID: 1, CustomerID: 7}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(payments, bookings)

	p, err := service.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: 1,
		Amount:    480,
		Method:    "card",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), p.CustomerID)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, "USD", p.Currency)
	assert.NotEmpty(t, p.TransactionID)
}

func TestService_RecordPayment_BookingMissing(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	service := NewService(payments, bookings)

	_, err := service.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: 42,
		Amount:    100,
		Method:    "card",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdatePaymentStatus_RejectsUnknownStatus(t *testing.T) {
	service := NewService(new(MockPaymentRepository), new(MockBookingReader))

	_, err := service.UpdatePaymentStatus(context.Background(), 1, "settled", "")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdatePaymentStatus_Success(t *testing.T) {
	payments := new(MockPaymentRepository)

	payments.On("GetByID", mock.Anything, int64(301)).Return(&domain.Payment{ID: 301, Status: domain.PaymentPending}, nil).Once()
	payments.On("UpdateStatus", mock.Anything, int64(301), domain.PaymentCompleted, "gateway ok").Return(nil)
	payments.On("GetByID", mock.Anything, int64(301)).Return(&domain.Payment{ID: 301, Status: domain.PaymentCompleted}, nil)

	service := NewService(payments, new(MockBookingReader))

	p, err := service.UpdatePaymentStatus(context.Background(), 301, domain.PaymentCompleted, "gateway ok")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
}

func TestService_RecordRefund_FullAmount(t *testing.T) {
	payments := new(MockPaymentRepository)

	payments.On("GetByID", mock.Anything, int64(301)).Return(&domain.Payment{ID: 301, Amount: 480}, nil)
	payments.On("RecordRefund", mock.Anything, int64(301), 480.0, "stay cancelled", domain.PaymentRefunded, mock.Anything).Return(nil)

	service := NewService(payments, new(MockBookingReader))

	_, err := service.RecordRefund(context.Background(), 301, RefundRequest{Amount: 480, Reason: "stay cancelled"})

	assert.NoError(t, err)
	payments.AssertCalled(t, "RecordRefund", mock.Anything, int64(301), 480.0, "stay cancelled", domain.PaymentRefunded, mock.Anything)
}

func TestService_RecordRefund_PartialAmount(t *testing.T) {
	payments := new(MockPaymentRepository)

	payments.On("GetByID", mock.Anything, int64(301)).Return(&domain.Payment{ID: 301, Amount: 480}, nil)
	payments.On("RecordRefund", mock.Anything, int64(301), 240.0, "", domain.PaymentPartiallyRefunded, mock.Anything).Return(nil)

	service := NewService(payments, new(MockBookingReader))

	_, err := service.RecordRefund(context.Background(), 301, RefundRequest{Amount: 240})

	assert.NoError(t, err)
}

func TestService_RecordRefund_ExceedsPayment(t *testing.T) {
	payments := new(MockPaymentRepository)
	payments.On("GetByID", mock.Anything, int64(301)).Return(&domain.Payment{ID: 301, Amount: 480}, nil)

	service := NewService(payments, new(MockBookingReader))

	_, err := service.RecordRefund(context.Background(), 301, RefundRequest{Amount: 500})

	assert.ErrorIs(t, err, ErrRefundExceeds)
	payments.AssertNotCalled(t, "RecordRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
