package auth

import (
	"context"
	"errors"
	"strings"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Service contains all business logic for authentication
type Service struct {
	staff StaffRepository
	jwt   jwtService
}

type LoginResult struct {
	Staff *domain.Staff
	Token string
}

func NewService(staff StaffRepository, jwt jwtService) *Service {
	return &Service{staff: staff, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	acct, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Burn a comparison so missing accounts cost the same as
			// wrong passwords.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0123456789012345678901"), []byte(req.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(acct.ID, acct.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Staff: acct, Token: token}, nil
}

// CreateStaff registers a new employee account. Only admins reach this
// through the router.
func (s *Service) CreateStaff(ctx context.Context, req CreateStaffRequest) (*domain.Staff, error) {
	if !domain.ValidStaffRole(req.Role) {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acct := &domain.Staff{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
	}

	if err := s.staff.Create(ctx, acct); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return acct, nil
}
