package auth

import (
	"context"

	"serenityhaven/internal/domain"
)

// StaffRepository defines the storage interface for staff accounts
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
