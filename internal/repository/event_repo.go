package repository

import (
	"context"
	"time"

	"ticketbooking/internal/domain"

	"gorm.io/gorm"
)

type EventFilters struct {
	VenueID  *int64
	Upcoming bool
	Skip     int
	Limit    int
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func toDomainEvent(m eventModel) *domain.Event {
	e := &domain.Event{
		ID:        m.ID,
		Name:      m.Name,
		EventDate: m.EventDate,
		VenueID:   m.VenueID,
	}
	if m.Venue != nil {
		e.Venue = toDomainVenue(*m.Venue)
	}
	for _, b := range m.Bookings {
		e.Bookings = append(e.Bookings, *toDomainBooking(b))
	}
	return e
}

func toEventModel(e *domain.Event) eventModel {
	return eventModel{
		ID:        e.ID,
		Name:      e.Name,
		EventDate: e.EventDate,
		VenueID:   e.VenueID,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = *toDomainEvent(m)
	return nil
}

// GetByID returns the event with its venue attached.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	err := r.db.WithContext(ctx).
		Preload("Venue").
		First(&m, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) List(ctx context.Context, f EventFilters) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&eventModel{})

	if f.VenueID != nil {
		q = q.Where("venue_id = ?", *f.VenueID)
	}
	if f.Upcoming {
		q = q.Where("event_date > ?", time.Now().UTC())
	}

	var rows []eventModel
	err := q.
		Preload("Venue").
		Order("id").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	res := r.db.WithContext(ctx).Model(&eventModel{ID: e.ID}).Updates(map[string]any{
		"name":       m.Name,
		"event_date": m.EventDate,
		"venue_id":   m.VenueID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&eventModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
