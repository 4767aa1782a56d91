package venue

import (
	"context"
	"testing"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	if v != nil && args.Error(0) == nil {
		v.ID = 3
	}
	return args.Error(0)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetWithEvents(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) List(ctx context.Context, skip, limit int) ([]domain.Venue, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockVenueRepository)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo)

	v, err := service.Create(context.Background(), CreateVenueRequest{
		Name:     "Madison Square Garden",
		Capacity: 20000,
		Address:  "4 Pennsylvania Plaza",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), v.ID)
	assert.Equal(t, 20000, v.Capacity)
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockVenueRepository)

	mockRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockRepo)

	_, err := service.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_EmptyAddressRejected(t *testing.T) {
	mockRepo := new(MockVenueRepository)

	mockRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{
		ID:       3,
		Name:     "Madison Square Garden",
		Capacity: 20000,
		Address:  "4 Pennsylvania Plaza",
	}, nil)

	service := NewService(mockRepo)

	empty := ""
	_, err := service.Update(context.Background(), 3, UpdateVenueRequest{Address: &empty})

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_PartialFields(t *testing.T) {
	mockRepo := new(MockVenueRepository)

	mockRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Venue{
		ID:       3,
		Name:     "Madison Square Garden",
		Capacity: 20000,
		Address:  "4 Pennsylvania Plaza",
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo)

	capacity := 18000
	v, err := service.Update(context.Background(), 3, UpdateVenueRequest{Capacity: &capacity})

	assert.NoError(t, err)
	assert.Equal(t, 18000, v.Capacity)
	assert.Equal(t, "Madison Square Garden", v.Name)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockVenueRepository)

	mockRepo.On("Delete", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	service := NewService(mockRepo)

	err := service.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
