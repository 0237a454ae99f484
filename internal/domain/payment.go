package domain

import "time"

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentProcessing        PaymentStatus = "processing"
	PaymentCompleted         PaymentStatus = "completed"
	PaymentFailed            PaymentStatus = "failed"
	PaymentCancelled         PaymentStatus = "cancelled"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentSucceeded         PaymentStatus = "succeeded"
)

// ValidPaymentStatus reports whether s is one of the canonical statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed,
		PaymentCancelled, PaymentRefunded, PaymentPartiallyRefunded, PaymentSucceeded:
		return true
	}
	return false
}

// Payment records one payment attempt against a booking. A booking may carry
// several (partial payments, retries, refunds); rows are append-only audit.
type Payment struct {
	ID         int64 `json:"id"`
	BookingID  int64 `json:"booking_id" validate:"required"`
	CustomerID int64 `json:"customer_id"`

	Amount        float64       `json:"amount" validate:"required,gt=0"`
	Method        string        `json:"method" validate:"required"`
	Status        PaymentStatus `json:"status"`
	StatusMessage string        `json:"status_message,omitempty"`
	TransactionID string        `json:"transaction_id"`
	Currency      string        `json:"currency"`

	RefundAmount *float64   `json:"refund_amount,omitempty"`
	RefundDate   *time.Time `json:"refund_date,omitempty"`
	RefundReason string     `json:"refund_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
