package repository

import (
	"context"
	"errors"
	"time"

	"serenityhaven/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64 `gorm:"column:id;primaryKey"`
	RoomID     int64 `gorm:"column:room_id;index:idx_bookings_room_dates"`
	CustomerID int64 `gorm:"column:customer_id;index"`

	CheckInDate  time.Time `gorm:"column:check_in_date;index:idx_bookings_room_dates"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index:idx_bookings_room_dates"`
	Status       string    `gorm:"column:status;index"`
	TotalPrice   float64   `gorm:"column:total_price"`

	GuestCount    int     `gorm:"column:guest_count"`
	ChildrenCount int     `gorm:"column:children_count"`
	BookingSource *string `gorm:"column:booking_source"`

	IsRefundable     bool    `gorm:"column:is_refundable"`
	RefundPercentage float64 `gorm:"column:refund_percentage"`

	BookingReference string  `gorm:"column:booking_reference;uniqueIndex:idx_bookings_reference"`
	SpecialRequests  *string `gorm:"column:special_requests"`
	InternalNotes    *string `gorm:"column:internal_notes"`

	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:               m.ID,
		RoomID:           m.RoomID,
		CustomerID:       m.CustomerID,
		CheckInDate:      m.CheckInDate,
		CheckOutDate:     m.CheckOutDate,
		Status:           domain.BookingStatus(m.Status),
		TotalPrice:       m.TotalPrice,
		GuestCount:       m.GuestCount,
		ChildrenCount:    m.ChildrenCount,
		BookingSource:    strVal(m.BookingSource),
		IsRefundable:     m.IsRefundable,
		RefundPercentage: m.RefundPercentage,
		BookingReference: m.BookingReference,
		SpecialRequests:  strVal(m.SpecialRequests),
		InternalNotes:    strVal(m.InternalNotes),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		CancelledAt:      m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:               b.ID,
		RoomID:           b.RoomID,
		CustomerID:       b.CustomerID,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		Status:           string(b.Status),
		TotalPrice:       b.TotalPrice,
		GuestCount:       b.GuestCount,
		ChildrenCount:    b.ChildrenCount,
		BookingSource:    strPtr(b.BookingSource),
		IsRefundable:     b.IsRefundable,
		RefundPercentage: b.RefundPercentage,
		BookingReference: b.BookingReference,
		SpecialRequests:  strPtr(b.SpecialRequests),
		InternalNotes:    strPtr(b.InternalNotes),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		CancelledAt:      b.CancelledAt,
	}
}

// activeStatuses excludes the statuses that never block a room.
const activeStatuses = "status NOT IN ('cancelled', 'no_show')"

// Create inserts a booking after re-checking the room for conflicts inside
// the same transaction. The storage-level no-overlap constraint
// (idx_no_overbooking, Postgres only) remains the backstop for anything this
// check can miss under weaker isolation.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&bookingModel{}).
			Where("room_id = ?", b.RoomID).
			Where(activeStatuses).
			Where("check_in_date < ? AND check_out_date > ?", b.CheckOutDate, b.CheckInDate).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_reference = ?", ref).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasOverlap reports whether any blocking booking intersects
// [checkIn, checkOut) for the room, using the half-open interval rule.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where(activeStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateStatusIf moves a booking from one status to another with a
// conditional update; the guard loses cleanly when a concurrent caller has
// already moved the row. Returns false when nothing matched.
func (r *BookingRepository) UpdateStatusIf(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

// Cancel moves a booking to cancelled, recording the refund percentage and
// cancellation timestamp. Only cancellable source states match.
func (r *BookingRepository) Cancel(ctx context.Context, id int64, refundPercent float64, reason string, at time.Time) (bool, error) {
	updates := map[string]any{
		"status":            string(domain.BookingCancelled),
		"refund_percentage": refundPercent,
		"cancelled_at":      at,
		"updated_at":        at,
	}
	if reason != "" {
		updates["internal_notes"] = "Cancelled: " + reason
	}
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status IN ('pending', 'confirmed')", id).
		Updates(updates)
	return tx.RowsAffected > 0, tx.Error
}

// UpdateDetails edits the guest-editable fields; matches only while the
// booking is still cancellable.
func (r *BookingRepository) UpdateDetails(ctx context.Context, id int64, guestCount, childrenCount int, specialRequests string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status IN ('pending', 'confirmed')", id).
		Updates(map[string]any{
			"guest_count":      guestCount,
			"children_count":   childrenCount,
			"special_requests": strPtr(specialRequests),
			"updated_at":       time.Now().UTC(),
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC")
	return r.list(q, limit, offset)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("check_in_date")
	return r.list(q, limit, offset)
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("check_in_date")
	return r.list(q, limit, offset)
}

// ListByDateRange returns bookings whose stay intersects [from, to).
func (r *BookingRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Order("check_in_date")
	return r.list(q, 0, 0)
}

// TodaysCheckIns: confirmed bookings arriving today, in room order for the
// front desk.
func (r *BookingRepository) TodaysCheckIns(ctx context.Context, today time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("check_in_date = ? AND status = ?", today, string(domain.BookingConfirmed)).
		Order("room_id")
	return r.list(q, 0, 0)
}

func (r *BookingRepository) TodaysCheckOuts(ctx context.Context, today time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("check_out_date = ? AND status = ?", today, string(domain.BookingCheckedIn)).
		Order("room_id")
	return r.list(q, 0, 0)
}

func (r *BookingRepository) CurrentGuests(ctx context.Context) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", string(domain.BookingCheckedIn)).
		Order("room_id")
	return r.list(q, 0, 0)
}

// MarkNoShows flips confirmed bookings whose check-in date passed without a
// check-in to no_show. Run by the operational sweep, not the core.
func (r *BookingRepository) MarkNoShows(ctx context.Context, before time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ? AND check_in_date < ?", string(domain.BookingConfirmed), before).
		Updates(map[string]any{
			"status":     string(domain.BookingNoShow),
			"updated_at": time.Now().UTC(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *BookingRepository) list(q *gorm.DB, limit, offset int) ([]domain.Booking, error) {
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
