package customer

import (
	"context"

	"serenityhaven/internal/domain"
)

// CustomerRepository defines the storage interface for guest records
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason string) error
	AddNote(ctx context.Context, n *domain.CustomerNote) error
	NotesByCustomer(ctx context.Context, customerID int64) ([]domain.CustomerNote, error)
}
