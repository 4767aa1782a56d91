package venue

import (
	"context"

	"ticketbooking/internal/domain"
)

type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetWithEvents(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, skip, limit int) ([]domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error
}
