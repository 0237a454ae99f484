package repository

import (
	"context"
	"errors"
	"time"

	"serenityhaven/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID           int64    `gorm:"column:id;primaryKey"`
	Name         string   `gorm:"column:name"`
	Description  *string  `gorm:"column:description"`
	RoomType     string   `gorm:"column:room_type;index"`
	RoomNumber   int      `gorm:"column:room_number;uniqueIndex"`
	Floor        int      `gorm:"column:floor"`
	Capacity     int      `gorm:"column:capacity"`
	BasePrice    float64  `gorm:"column:base_price"`
	DynamicPrice *float64 `gorm:"column:dynamic_price"`
	IsAvailable  bool     `gorm:"column:is_available"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:           m.ID,
		Name:         m.Name,
		Description:  strVal(m.Description),
		RoomType:     domain.RoomType(m.RoomType),
		RoomNumber:   m.RoomNumber,
		Floor:        m.Floor,
		Capacity:     m.Capacity,
		BasePrice:    m.BasePrice,
		DynamicPrice: m.DynamicPrice,
		IsAvailable:  m.IsAvailable,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:           r.ID,
		Name:         r.Name,
		Description:  strPtr(r.Description),
		RoomType:     string(r.RoomType),
		RoomNumber:   r.RoomNumber,
		Floor:        r.Floor,
		Capacity:     r.Capacity,
		BasePrice:    r.BasePrice,
		DynamicPrice: r.DynamicPrice,
		IsAvailable:  r.IsAvailable,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rows []roomModel
	if err := r.db.WithContext(ctx).Order("room_number").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	var rows []roomModel
	err := r.db.WithContext(ctx).
		Where("room_type = ?", string(roomType)).
		Order("room_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// ListAvailable returns open rooms with no blocking booking over
// [checkIn, checkOut).
func (r *RoomRepository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	var rows []roomModel
	q := `
SELECT r.*
FROM rooms r
WHERE r.is_available = ?
  AND NOT EXISTS (
    SELECT 1 FROM bookings b
    WHERE b.room_id = r.id
      AND b.status NOT IN ('cancelled', 'no_show')
      AND b.check_in_date < ? AND b.check_out_date > ?
  )
ORDER BY r.room_number
`
	if err := r.db.WithContext(ctx).Raw(q, true, checkOut, checkIn).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", room.ID).Updates(map[string]any{
		"name":          m.Name,
		"description":   m.Description,
		"room_type":     m.RoomType,
		"room_number":   m.RoomNumber,
		"floor":         m.Floor,
		"capacity":      m.Capacity,
		"base_price":    m.BasePrice,
		"dynamic_price": m.DynamicPrice,
		"updated_at":    time.Now().UTC(),
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomRepository) UpdateAvailability(ctx context.Context, id int64, isAvailable bool) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_available": isAvailable,
			"updated_at":   time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
