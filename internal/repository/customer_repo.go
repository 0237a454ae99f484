package repository

import (
	"context"
	"errors"
	"time"

	"serenityhaven/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Email     string `gorm:"column:email;uniqueIndex"`
	Phone     *string

	Nationality *string `gorm:"column:nationality"`
	Address     *string `gorm:"column:address"`
	City        *string `gorm:"column:city"`
	Country     *string `gorm:"column:country"`

	IsVip bool `gorm:"column:is_vip"`

	IsBlacklisted   bool    `gorm:"column:is_blacklisted"`
	BlacklistReason *string `gorm:"column:blacklist_reason"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

type customerNoteModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	CustomerID int64  `gorm:"column:customer_id;index"`
	Note       string `gorm:"column:note"`
	CreatedBy  string `gorm:"column:created_by"`

	NoteType string `gorm:"column:note_type"`
	Priority string `gorm:"column:priority"`

	IsImportant    bool `gorm:"column:is_important"`
	RequiresAction bool `gorm:"column:requires_action"`
	ActionDone     bool `gorm:"column:action_done"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (customerNoteModel) TableName() string { return "customer_notes" }

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Email:           m.Email,
		Phone:           strVal(m.Phone),
		Nationality:     strVal(m.Nationality),
		Address:         strVal(m.Address),
		City:            strVal(m.City),
		Country:         strVal(m.Country),
		IsVip:           m.IsVip,
		IsBlacklisted:   m.IsBlacklisted,
		BlacklistReason: strVal(m.BlacklistReason),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		Phone:           strPtr(c.Phone),
		Nationality:     strPtr(c.Nationality),
		Address:         strPtr(c.Address),
		City:            strPtr(c.City),
		Country:         strPtr(c.Country),
		IsVip:           c.IsVip,
		IsBlacklisted:   c.IsBlacklisted,
		BlacklistReason: strPtr(c.BlacklistReason),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toDomainNote(m customerNoteModel) *domain.CustomerNote {
	return &domain.CustomerNote{
		ID:             m.ID,
		CustomerID:     m.CustomerID,
		Note:           m.Note,
		CreatedBy:      m.CreatedBy,
		NoteType:       domain.NoteType(m.NoteType),
		Priority:       domain.NotePriority(m.Priority),
		IsImportant:    m.IsImportant,
		RequiresAction: m.RequiresAction,
		ActionDone:     m.ActionDone,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var rows []customerModel
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"first_name":  m.FirstName,
		"last_name":   m.LastName,
		"email":       m.Email,
		"phone":       m.Phone,
		"nationality": m.Nationality,
		"address":     m.Address,
		"city":        m.City,
		"country":     m.Country,
		"is_vip":      m.IsVip,
		"updated_at":  time.Now().UTC(),
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason string) error {
	tx := r.db.WithContext(ctx).
		Model(&customerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_blacklisted":   blacklisted,
			"blacklist_reason": strPtr(reason),
			"updated_at":       time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) AddNote(ctx context.Context, n *domain.CustomerNote) error {
	m := customerNoteModel{
		CustomerID:     n.CustomerID,
		Note:           n.Note,
		CreatedBy:      n.CreatedBy,
		NoteType:       string(n.NoteType),
		Priority:       string(n.Priority),
		IsImportant:    n.IsImportant,
		RequiresAction: n.RequiresAction,
		ActionDone:     n.ActionDone,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*n = *toDomainNote(m)
	return nil
}

func (r *CustomerRepository) NotesByCustomer(ctx context.Context, customerID int64) ([]domain.CustomerNote, error) {
	var rows []customerNoteModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.CustomerNote, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNote(m))
	}
	return out, nil
}
