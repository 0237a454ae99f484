package auth

import (
	"context"
	"testing"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	if s != nil && args.Error(0) == nil {
		s.ID = 3
	}
	return args.Error(0)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token-for-test", nil
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.MinCost)

	repo := new(MockStaffRepository)
	repo.On("GetByEmail", mock.Anything, "frontdesk@serenityhaven.example").Return(&domain.Staff{
		ID:           2,
		Email:        "frontdesk@serenityhaven.example",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}, nil)

	service := NewService(repo, stubJWT{})

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    " Frontdesk@SerenityHaven.example ",
		Password: "frontdesk123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-for-test", res.Token)
	assert.Equal(t, int64(2), res.Staff.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.MinCost)

	repo := new(MockStaffRepository)
	repo.On("GetByEmail", mock.Anything, "frontdesk@serenityhaven.example").Return(&domain.Staff{
		PasswordHash: string(hash),
	}, nil)

	service := NewService(repo, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "frontdesk@serenityhaven.example",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownAccount(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@serenityhaven.example").Return(nil, repository.ErrNotFound)

	service := NewService(repo, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@serenityhaven.example",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_CreateStaff_RejectsUnknownRole(t *testing.T) {
	service := NewService(new(MockStaffRepository), stubJWT{})

	_, err := service.CreateStaff(context.Background(), CreateStaffRequest{
		Email:    "new@serenityhaven.example",
		Password: "longenough",
		Name:     "New Hire",
		Role:     "owner",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateStaff_HashesPassword(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, stubJWT{})

	acct, err := service.CreateStaff(context.Background(), CreateStaffRequest{
		Email:    "New@SerenityHaven.example",
		Password: "longenough",
		Name:     "New Hire",
		Role:     domain.RoleStaff,
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@serenityhaven.example", acct.Email)
	assert.NotEqual(t, "longenough", acct.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("longenough")))
}
