package customer

import (
	"context"
	"errors"
	"strings"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/pkg/validator"
	"serenityhaven/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	repo CustomerRepository
}

func NewService(repo CustomerRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	c := &domain.Customer{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		Phone:       req.Phone,
		Nationality: req.Nationality,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		IsVip:       req.IsVip,
	}

	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.Phone = req.Phone
	c.Nationality = req.Nationality
	c.Address = req.Address
	c.City = req.City
	c.Country = req.Country
	c.IsVip = req.IsVip

	if errs := validator.Validate(c); errs != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c, nil
}

// SetBlacklist flags or clears a guest. Blacklisted guests keep their
// history; only future bookings are refused at the front desk.
func (s *Service) SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason string) (*domain.Customer, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if !blacklisted {
		reason = ""
	}
	if err := s.repo.SetBlacklist(ctx, id, blacklisted, reason); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Service) AddNote(ctx context.Context, customerID int64, createdBy string, req AddNoteRequest) (*domain.CustomerNote, error) {
	if _, err := s.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	noteType := domain.NoteType(req.NoteType)
	if noteType == "" {
		noteType = domain.NoteGeneral
	}
	priority := domain.NotePriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}

	n := &domain.CustomerNote{
		CustomerID:     customerID,
		Note:           req.Note,
		CreatedBy:      createdBy,
		NoteType:       noteType,
		Priority:       priority,
		IsImportant:    req.IsImportant,
		RequiresAction: req.RequiresAction,
	}

	if errs := validator.Validate(n); errs != nil {
		return nil, ErrValidation
	}

	if err := s.repo.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListNotes(ctx context.Context, customerID int64) ([]domain.CustomerNote, error) {
	if _, err := s.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.repo.NotesByCustomer(ctx, customerID)
}

// View wraps a guest record with the derived front-desk display name.
func (s *Service) View(c *domain.Customer) CustomerView {
	return CustomerView{
		Customer:    c,
		DisplayName: domain.DisplayName(c.FirstName, c.IsVip),
	}
}
