package repository

import (
	"context"
	"errors"
	"time"

	"serenityhaven/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID         int64 `gorm:"column:id;primaryKey"`
	BookingID  int64 `gorm:"column:booking_id;index"`
	CustomerID int64 `gorm:"column:customer_id"`

	Amount        float64 `gorm:"column:amount"`
	Method        string  `gorm:"column:method"`
	Status        string  `gorm:"column:status"`
	StatusMessage *string `gorm:"column:status_message"`
	TransactionID string  `gorm:"column:transaction_id;index"`
	Currency      string  `gorm:"column:currency"`

	RefundAmount *float64   `gorm:"column:refund_amount"`
	RefundDate   *time.Time `gorm:"column:refund_date"`
	RefundReason *string    `gorm:"column:refund_reason"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		CustomerID:    m.CustomerID,
		Amount:        m.Amount,
		Method:        m.Method,
		Status:        domain.PaymentStatus(m.Status),
		StatusMessage: strVal(m.StatusMessage),
		TransactionID: m.TransactionID,
		Currency:      m.Currency,
		RefundAmount:  m.RefundAmount,
		RefundDate:    m.RefundDate,
		RefundReason:  strVal(m.RefundReason),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		BookingID:     p.BookingID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        string(p.Status),
		StatusMessage: strPtr(p.StatusMessage),
		TransactionID: p.TransactionID,
		Currency:      p.Currency,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, message string) error {
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(status),
			"status_message": strPtr(message),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) RecordRefund(ctx context.Context, id int64, amount float64, reason string, status domain.PaymentStatus, at time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        string(status),
			"refund_amount": amount,
			"refund_date":   at,
			"refund_reason": strPtr(reason),
			"updated_at":    at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
