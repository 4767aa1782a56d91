package booking

import (
	"context"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	SumQuantityForEvent(ctx context.Context, eventID, excludeID int64) (int, error)
}

// EventRepository resolves event references; GetByID attaches the venue.
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type TicketTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TicketType, error)
}
