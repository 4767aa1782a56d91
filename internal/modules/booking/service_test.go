package booking

import (
	"context"
	"testing"
	"time"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
	nextID int64
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		m.nextID++
		b.ID = 1000 + m.nextID // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) SumQuantityForEvent(ctx context.Context, eventID, excludeID int64) (int, error) {
	args := m.Called(ctx, eventID, excludeID)
	return args.Int(0), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

type MockTicketTypeRepository struct {
	mock.Mock
}

func (m *MockTicketTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TicketType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketType), args.Error(1)
}

func rockConcert() *domain.Event {
	return &domain.Event{
		ID:        7,
		Name:      "Rock Concert",
		EventDate: time.Date(2026, 12, 31, 20, 0, 0, 0, time.UTC),
		VenueID:   3,
		Venue: &domain.Venue{
			ID:       3,
			Name:     "Madison Square Garden",
			Capacity: 20000,
			Address:  "4 Pennsylvania Plaza, New York",
		},
	}
}

func vipTicket() *domain.TicketType {
	return &domain.TicketType{ID: 5, Name: "VIP", Price: 299.99}
}

func johnDoeRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Quantity:      2,
		EventID:       7,
		TicketTypeID:  5,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockEvents.On("GetByID", mock.Anything, int64(7)).Return(rockConcert(), nil)
	mockTicketTypes.On("GetByID", mock.Anything, int64(5)).Return(vipTicket(), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Booking)
		assert.Equal(t, 599.98, b.TotalPrice)
		assert.Equal(t, domain.BookingPending, b.Status)
		assert.False(t, b.BookingDate.IsZero())
	})
	mockBookings.On("GetByID", mock.Anything, int64(1001)).Return(&domain.Booking{
		ID:            1001,
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Quantity:      2,
		TotalPrice:    599.98,
		Status:        domain.BookingPending,
		EventID:       7,
		TicketTypeID:  5,
		Event:         rockConcert(),
		TicketType:    vipTicket(),
	}, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	b, err := service.Create(context.Background(), johnDoeRequest())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 599.98, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.NotNil(t, b.Event)
	assert.NotNil(t, b.Event.Venue)
	assert.NotNil(t, b.TicketType)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_EventNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockEvents.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	req := johnDoeRequest()
	req.EventID = 404

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrEventNotFound)
	// nothing may be persisted after a failed precondition
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockTicketTypes.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Create_TicketTypeNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockEvents.On("GetByID", mock.Anything, int64(7)).Return(rockConcert(), nil)
	mockTicketTypes.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	req := johnDoeRequest()
	req.TicketTypeID = 404

	_, err := service.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrTicketTypeNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		mockBookings := new(MockBookingRepository)
		mockEvents := new(MockEventRepository)
		mockTicketTypes := new(MockTicketTypeRepository)

		mockEvents.On("GetByID", mock.Anything, int64(7)).Return(rockConcert(), nil)
		mockTicketTypes.On("GetByID", mock.Anything, int64(5)).Return(vipTicket(), nil)

		service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

		req := johnDoeRequest()
		req.Quantity = qty

		_, err := service.Create(context.Background(), req)

		assert.ErrorIs(t, err, ErrValidation)
		mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestService_Create_CapacityEnforced(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	event := rockConcert()
	event.Venue.Capacity = 10

	mockEvents.On("GetByID", mock.Anything, int64(7)).Return(event, nil)
	mockTicketTypes.On("GetByID", mock.Anything, int64(5)).Return(vipTicket(), nil)
	mockBookings.On("SumQuantityForEvent", mock.Anything, int64(7), int64(0)).Return(9, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{EnforceVenueCapacity: true})

	_, err := service.Create(context.Background(), johnDoeRequest())

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// With the policy off, nothing guards venue capacity; an oversized
// booking goes straight through. This documents the gap rather than
// fixing it silently.
func TestService_Create_CapacityNotEnforcedByDefault(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	event := rockConcert()
	event.Venue.Capacity = 1

	mockEvents.On("GetByID", mock.Anything, int64(7)).Return(event, nil)
	mockTicketTypes.On("GetByID", mock.Anything, int64(5)).Return(vipTicket(), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1001)).Return(&domain.Booking{ID: 1001, Quantity: 500}, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	req := johnDoeRequest()
	req.Quantity = 500

	b, err := service.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 500, b.Quantity)
	mockBookings.AssertNotCalled(t, "SumQuantityForEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_NotIdempotent(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockEvents.On("GetByID", mock.Anything, int64(7)).Return(rockConcert(), nil)
	mockTicketTypes.On("GetByID", mock.Anything, int64(5)).Return(vipTicket(), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1001)).Return(&domain.Booking{ID: 1001}, nil)
	mockBookings.On("GetByID", mock.Anything, int64(1002)).Return(&domain.Booking{ID: 1002}, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	first, err := service.Create(context.Background(), johnDoeRequest())
	assert.NoError(t, err)
	second, err := service.Create(context.Background(), johnDoeRequest())
	assert.NoError(t, err)

	// retrying the identical request creates a second booking
	assert.NotEqual(t, first.ID, second.ID)
	mockBookings.AssertNumberOfCalls(t, "Create", 2)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:     42,
		Status: domain.BookingPending,
	}, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	_, err := service.UpdateStatus(context.Background(), 42, "refunded")

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	_, err := service.UpdateStatus(context.Background(), 404, "confirmed")

	assert.ErrorIs(t, err, ErrNotFound)
}

// No transition graph: a cancelled booking may move back to confirmed.
func TestService_UpdateStatus_CancelledToConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:     42,
		Status: domain.BookingCancelled,
	}, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(42), "confirmed").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:     42,
		Status: domain.BookingConfirmed,
	}, nil).Once()

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	b, err := service.UpdateStatus(context.Background(), 42, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	_, err := service.List(context.Background(), repository.BookingFilters{Status: "paid", Limit: 100})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_ListByCustomer_Empty(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	mockBookings.On("ListByCustomerEmail", mock.Anything, "ghost@example.com").Return([]domain.Booking{}, nil)

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	_, err := service.ListByCustomer(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_QuantityRecomputesPrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventRepository)
	mockTicketTypes := new(MockTicketTypeRepository)

	stored := &domain.Booking{
		ID:           42,
		Quantity:     2,
		TotalPrice:   599.98,
		Status:       domain.BookingPending,
		EventID:      7,
		TicketTypeID: 5,
		Event:        rockConcert(),
		TicketType:   vipTicket(),
	}
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(stored, nil).Once()
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Booking)
		assert.Equal(t, 3, b.Quantity)
		assert.Equal(t, 899.97, b.TotalPrice)
	})
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:         42,
		Quantity:   3,
		TotalPrice: 899.97,
	}, nil).Once()

	service := NewService(mockBookings, mockEvents, mockTicketTypes, Policy{})

	qty := 3
	b, err := service.Update(context.Background(), 42, UpdateBookingRequest{Quantity: &qty})

	assert.NoError(t, err)
	assert.Equal(t, 899.97, b.TotalPrice)
	mockBookings.AssertExpectations(t)
}
