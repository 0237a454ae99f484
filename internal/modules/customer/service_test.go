package customer

import (
	"context"
	"testing"

	"serenityhaven/internal/domain"
	"serenityhaven/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil && args.Error(0) == nil {
		c.ID = 7
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason string) error {
	args := m.Called(ctx, id, blacklisted, reason)
	return args.Error(0)
}

func (m *MockCustomerRepository) AddNote(ctx context.Context, n *domain.CustomerNote) error {
	args := m.Called(ctx, n)
	if n != nil && args.Error(0) == nil {
		n.ID = 21
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) NotesByCustomer(ctx context.Context, customerID int64) ([]domain.CustomerNote, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.CustomerNote), args.Error(1)
}

func TestService_CreateCustomer_NormalizesEmail(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	c, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		FirstName: "  Amelia ",
		LastName:  "Hart",
		Email:     " Amelia.Hart@Example.COM ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "amelia.hart@example.com", c.Email)
	assert.Equal(t, "Amelia", c.FirstName)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(repo)

	_, err := service.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_SetBlacklist_ClearsReasonOnUnblacklist(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7}, nil)
	repo.On("SetBlacklist", mock.Anything, int64(7), false, "").Return(nil)

	service := NewService(repo)

	_, err := service.SetBlacklist(context.Background(), 7, false, "stale reason")

	assert.NoError(t, err)
	repo.AssertCalled(t, "SetBlacklist", mock.Anything, int64(7), false, "")
}

func TestService_AddNote_DefaultsTypeAndPriority(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Customer{ID: 7}, nil)
	repo.On("AddNote", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	n, err := service.AddNote(context.Background(), 7, "frontdesk", AddNoteRequest{
		Note: "Prefers a quiet room.",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.NoteGeneral, n.NoteType)
	assert.Equal(t, domain.PriorityNormal, n.Priority)
	assert.Equal(t, "frontdesk", n.CreatedBy)
}

func TestService_AddNote_CustomerMissing(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(repo)

	_, err := service.AddNote(context.Background(), 404, "frontdesk", AddNoteRequest{Note: "x"})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	repo.AssertNotCalled(t, "AddNote", mock.Anything, mock.Anything)
}

func TestService_View_DisplayName(t *testing.T) {
	service := NewService(new(MockCustomerRepository))

	vip := service.View(&domain.Customer{FirstName: "Amelia", IsVip: true})
	assert.Equal(t, "Amelia (VIP)", vip.DisplayName)

	unknown := service.View(&domain.Customer{})
	assert.Equal(t, "Unknown Guest", unknown.DisplayName)
}
