package event

import (
	"context"
	"errors"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

type Service struct {
	events   EventRepository
	venues   VenueRepository
	bookings BookingRepository
}

func NewService(events EventRepository, venues VenueRepository, bookings BookingRepository) *Service {
	return &Service{
		events:   events,
		venues:   venues,
		bookings: bookings,
	}
}

// Create verifies the referenced venue exists before persisting.
func (s *Service) Create(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	if _, err := s.venues.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	e := &domain.Event{
		Name:      req.Name,
		EventDate: req.EventDate,
		VenueID:   req.VenueID,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	return s.events.GetByID(ctx, e.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, f repository.EventFilters) ([]domain.Event, error) {
	return s.events.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateEventRequest) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.VenueID != nil && *req.VenueID != e.VenueID {
		if _, err := s.venues.GetByID(ctx, *req.VenueID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrVenueNotFound
			}
			return nil, err
		}
		e.VenueID = *req.VenueID
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.EventDate != nil {
		e.EventDate = *req.EventDate
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.events.GetByID(ctx, e.ID)
}

// Delete removes the event; the datastore cascades to its bookings.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Bookings(ctx context.Context, id int64) ([]domain.Booking, error) {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.bookings.ListByEventID(ctx, id)
}

// Revenue sums total_price over every booking of the event regardless of
// status, cancelled included.
func (s *Service) Revenue(ctx context.Context, id int64) (*RevenueResponse, error) {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	total, err := s.bookings.SumRevenueForEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RevenueResponse{EventID: id, Total: total}, nil
}

func (s *Service) Stats(ctx context.Context, id int64) (*domain.EventStats, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := s.bookings.ListByEventID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &domain.EventStats{
		EventID:   e.ID,
		EventName: e.Name,
	}
	for _, b := range rows {
		stats.TotalBookings++
		stats.TotalTicketsSold += b.Quantity
		stats.TotalRevenue += b.TotalPrice
		if b.Status == domain.BookingConfirmed {
			stats.ConfirmedBookings++
		}
	}
	if e.Venue != nil {
		stats.VenueCapacity = e.Venue.Capacity
		if e.Venue.Capacity > 0 {
			stats.CapacityUtilization = float64(stats.TotalTicketsSold) / float64(e.Venue.Capacity) * 100
		}
	}
	return stats, nil
}
