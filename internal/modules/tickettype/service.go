package tickettype

import (
	"context"
	"errors"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

type Service struct {
	ticketTypes TicketTypeRepository
}

func NewService(ticketTypes TicketTypeRepository) *Service {
	return &Service{ticketTypes: ticketTypes}
}

// Create rejects a name that is already taken.
func (s *Service) Create(ctx context.Context, req CreateTicketTypeRequest) (*domain.TicketType, error) {
	existing, err := s.ticketTypes.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	t := &domain.TicketType{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.ticketTypes.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.TicketType, error) {
	t, err := s.ticketTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) GetWithBookings(ctx context.Context, id int64) (*domain.TicketType, error) {
	t, err := s.ticketTypes.GetWithBookings(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.TicketType, error) {
	return s.ticketTypes.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTicketTypeRequest) (*domain.TicketType, error) {
	t, err := s.ticketTypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != t.Name {
		existing, err := s.ticketTypes.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateName
		}
		t.Name = *req.Name
	}
	if req.Price != nil {
		t.Price = *req.Price
	}

	if err := s.ticketTypes.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Stats(ctx context.Context, id int64) (*domain.TicketTypeStats, error) {
	t, err := s.ticketTypes.GetWithBookings(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stats := &domain.TicketTypeStats{
		TicketTypeID:   t.ID,
		TicketTypeName: t.Name,
		Price:          t.Price,
	}
	for _, b := range t.Bookings {
		stats.TotalBookings++
		stats.TotalTicketsSold += b.Quantity
		stats.TotalRevenue += b.TotalPrice
		if b.Status == domain.BookingConfirmed {
			stats.ConfirmedBookings++
		}
	}
	if stats.TotalBookings > 0 {
		stats.AverageTicketsPerBooking = float64(stats.TotalTicketsSold) / float64(stats.TotalBookings)
	}
	return stats, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.ticketTypes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
