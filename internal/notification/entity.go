package notification

import (
	"encoding/json"
	"time"
)

type Type string

const (
	TypeBookingConfirmation Type = "booking_confirmation"
	TypeBookingCancellation Type = "booking_cancellation"
)

// Notification is a durable outbound message. Delivery transport (email,
// push) drains these rows; the booking core only enqueues them after its own
// commit, so a delivery outage never touches booking state.
type Notification struct {
	ID        int64           `gorm:"column:id;primaryKey" json:"id"`
	Recipient string          `gorm:"column:recipient;index" json:"recipient"`
	Type      Type            `gorm:"column:type" json:"type"`
	Subject   string          `gorm:"column:subject" json:"subject"`
	Body      string          `gorm:"column:body" json:"body"`
	Data      json.RawMessage `gorm:"column:data" json:"data,omitempty"`

	// DedupeKey lets a retrying caller enqueue at most once per event.
	DedupeKey string `gorm:"column:dedupe_key;uniqueIndex" json:"dedupe_key"`

	SentAt    *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
