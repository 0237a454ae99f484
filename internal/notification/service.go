package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"serenityhaven/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) enqueue(ctx context.Context, n *Notification) error {
	if n.DedupeKey == "" {
		n.DedupeKey = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return err
	}
	log.Printf("notification enqueued type=%s recipient=%s id=%d", n.Type, n.Recipient, n.ID)
	return nil
}

func (s *Service) SendBookingConfirmation(ctx context.Context, recipient string, b *domain.Booking, room *domain.Room) error {
	data, _ := json.Marshal(map[string]any{
		"booking_id":        b.ID,
		"booking_reference": b.BookingReference,
		"room_id":           b.RoomID,
	})
	roomName := ""
	if room != nil {
		roomName = room.Name
	}
	return s.enqueue(ctx, &Notification{
		Recipient: recipient,
		Type:      TypeBookingConfirmation,
		Subject:   "Booking confirmation " + b.BookingReference,
		Body: fmt.Sprintf(
			"Your booking %s for %s is received: %s to %s, total %.2f.",
			b.BookingReference, roomName,
			b.CheckInDate.Format("2006-01-02"), b.CheckOutDate.Format("2006-01-02"),
			b.TotalPrice,
		),
		Data:      data,
		DedupeKey: "confirmation:" + b.BookingReference,
	})
}

func (s *Service) SendBookingCancellation(ctx context.Context, recipient string, b *domain.Booking, room *domain.Room) error {
	data, _ := json.Marshal(map[string]any{
		"booking_id":        b.ID,
		"booking_reference": b.BookingReference,
		"refund_percentage": b.RefundPercentage,
	})
	roomName := ""
	if room != nil {
		roomName = room.Name
	}
	return s.enqueue(ctx, &Notification{
		Recipient: recipient,
		Type:      TypeBookingCancellation,
		Subject:   "Booking cancelled " + b.BookingReference,
		Body: fmt.Sprintf(
			"Your booking %s for %s has been cancelled. Refund: %.0f%%.",
			b.BookingReference, roomName, b.RefundPercentage,
		),
		Data:      data,
		DedupeKey: "cancellation:" + b.BookingReference,
	})
}
