package venue

import (
	"context"
	"errors"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

type Service struct {
	venues VenueRepository
}

func NewService(venues VenueRepository) *Service {
	return &Service{venues: venues}
}

func (s *Service) Create(ctx context.Context, req CreateVenueRequest) (*domain.Venue, error) {
	v := &domain.Venue{
		Name:     req.Name,
		Capacity: req.Capacity,
		Address:  req.Address,
	}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) GetWithEvents(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venues.GetWithEvents(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]domain.Venue, error) {
	return s.venues.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVenueRequest) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Capacity != nil {
		v.Capacity = *req.Capacity
	}
	if req.Address != nil {
		if *req.Address == "" {
			return nil, ErrValidation
		}
		v.Address = *req.Address
	}

	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes the venue; events and their bookings cascade away.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
