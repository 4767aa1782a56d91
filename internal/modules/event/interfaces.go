package event

import (
	"context"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, f repository.EventFilters) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}

type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

type BookingRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error)
	SumRevenueForEvent(ctx context.Context, eventID int64) (float64, error)
}
