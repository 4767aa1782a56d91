package booking

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// Policy holds the configurable business rules. Capacity enforcement is
// off by default; even when on, the check-then-insert is serialized only
// by the datastore's transaction isolation, so two concurrent requests
// can still jointly exceed capacity.
type Policy struct {
	EnforceVenueCapacity bool
}

type Service struct {
	bookings    BookingRepository
	events      EventRepository
	ticketTypes TicketTypeRepository
	policy      Policy
}

func NewService(
	bookings BookingRepository,
	events EventRepository,
	ticketTypes TicketTypeRepository,
	policy Policy,
) *Service {
	return &Service{
		bookings:    bookings,
		events:      events,
		ticketTypes: ticketTypes,
		policy:      policy,
	}
}

// Create validates the request against existing Event and TicketType
// records, computes the total price server-side and persists the booking
// with status pending. Preconditions run in order: event, ticket type,
// quantity. Retrying the same request creates a second booking.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	ticketType, err := s.ticketTypes.GetByID(ctx, req.TicketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, ErrValidation
	}

	if s.policy.EnforceVenueCapacity && event.Venue != nil {
		booked, err := s.bookings.SumQuantityForEvent(ctx, event.ID, 0)
		if err != nil {
			return nil, err
		}
		if booked+req.Quantity > event.Venue.Capacity {
			return nil, ErrCapacityExceeded
		}
	}

	b := &domain.Booking{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Quantity:      req.Quantity,
		TotalPrice:    roundPrice(ticketType.Price * float64(req.Quantity)),
		BookingDate:   time.Now().UTC(),
		Status:        domain.BookingPending,
		EventID:       event.ID,
		TicketTypeID:  ticketType.ID,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, translateConstraint(err)
	}

	return s.bookings.GetByID(ctx, b.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List applies the supplied filters with AND semantics. An empty filter
// set returns every booking (bounded by skip/limit).
func (s *Service) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	if f.Status != "" && !domain.BookingStatus(f.Status).Valid() {
		return nil, ErrValidation
	}
	return s.bookings.List(ctx, f)
}

func (s *Service) ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error) {
	rows, err := s.bookings.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// Update applies a partial update. A quantity or ticket-type change
// recomputes total_price from the stored ticket type price; the client
// can never set total_price directly.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	event := b.Event
	if req.EventID != nil && *req.EventID != b.EventID {
		event, err = s.events.GetByID(ctx, *req.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, err
		}
		b.EventID = event.ID
	}

	ticketType := b.TicketType
	repriced := false
	if req.TicketTypeID != nil && *req.TicketTypeID != b.TicketTypeID {
		ticketType, err = s.ticketTypes.GetByID(ctx, *req.TicketTypeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTicketTypeNotFound
			}
			return nil, err
		}
		b.TicketTypeID = ticketType.ID
		repriced = true
	}

	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		b.CustomerEmail = *req.CustomerEmail
	}
	if req.Status != nil {
		if !domain.BookingStatus(*req.Status).Valid() {
			return nil, ErrValidation
		}
		b.Status = domain.BookingStatus(*req.Status)
	}

	if req.Quantity != nil && *req.Quantity != b.Quantity {
		if *req.Quantity < 1 {
			return nil, ErrValidation
		}
		if s.policy.EnforceVenueCapacity && event != nil && event.Venue != nil {
			booked, err := s.bookings.SumQuantityForEvent(ctx, b.EventID, b.ID)
			if err != nil {
				return nil, err
			}
			if booked+*req.Quantity > event.Venue.Capacity {
				return nil, ErrCapacityExceeded
			}
		}
		b.Quantity = *req.Quantity
		repriced = true
	}

	if repriced && ticketType != nil {
		b.TotalPrice = roundPrice(ticketType.Price * float64(b.Quantity))
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, translateConstraint(err)
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// UpdateStatus overwrites the status field only. Any of the three known
// statuses is accepted from any current status; there is no enforced
// transition graph.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !domain.BookingStatus(status).Valid() {
		return nil, ErrValidation
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.bookings.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// translateConstraint maps a Postgres foreign-key violation raised by a
// concurrent parent delete back to the not-found taxonomy.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "event") {
			return ErrEventNotFound
		}
		if strings.Contains(pgErr.ConstraintName, "ticket") {
			return ErrTicketTypeNotFound
		}
	}
	return err
}
