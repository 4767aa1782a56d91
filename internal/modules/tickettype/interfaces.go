package tickettype

import (
	"context"

	"ticketbooking/internal/domain"
)

type TicketTypeRepository interface {
	Create(ctx context.Context, t *domain.TicketType) error
	GetByID(ctx context.Context, id int64) (*domain.TicketType, error)
	GetByName(ctx context.Context, name string) (*domain.TicketType, error)
	GetWithBookings(ctx context.Context, id int64) (*domain.TicketType, error)
	List(ctx context.Context, skip, limit int) ([]domain.TicketType, error)
	Update(ctx context.Context, t *domain.TicketType) error
	Delete(ctx context.Context, id int64) error
}
