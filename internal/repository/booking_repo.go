package repository

import (
	"context"
	"strings"

	"ticketbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingFilters struct {
	EventID       *int64
	CustomerEmail string // case-insensitive substring match
	Status        string
	Skip          int
	Limit         int
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		Quantity:      m.Quantity,
		TotalPrice:    m.TotalPrice,
		BookingDate:   m.BookingDate,
		Status:        domain.BookingStatus(m.Status),
		EventID:       m.EventID,
		TicketTypeID:  m.TicketTypeID,
	}
	if m.Event != nil {
		b.Event = toDomainEvent(*m.Event)
	}
	if m.TicketType != nil {
		b.TicketType = toDomainTicketType(*m.TicketType)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Quantity:      b.Quantity,
		TotalPrice:    b.TotalPrice,
		BookingDate:   b.BookingDate,
		Status:        string(b.Status),
		EventID:       b.EventID,
		TicketTypeID:  b.TicketTypeID,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByID returns the booking expanded with its event (and the event's
// venue) and ticket type.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Venue").
		Preload("TicketType").
		First(&m, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})

	if f.EventID != nil {
		q = q.Where("event_id = ?", *f.EventID)
	}
	if f.CustomerEmail != "" {
		q = q.Where("lower(customer_email) LIKE ?", "%"+strings.ToLower(f.CustomerEmail)+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var rows []bookingModel
	err := q.
		Preload("Event").
		Preload("TicketType").
		Order("id").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Preload("Event").
		Preload("TicketType").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Preload("TicketType").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	res := r.db.WithContext(ctx).Model(&bookingModel{ID: b.ID}).Updates(map[string]any{
		"customer_name":  m.CustomerName,
		"customer_email": m.CustomerEmail,
		"quantity":       m.Quantity,
		"total_price":    m.TotalPrice,
		"status":         m.Status,
		"event_id":       m.EventID,
		"ticket_type_id": m.TicketTypeID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus overwrites the status column only.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := r.db.WithContext(ctx).
		Model(&bookingModel{ID: id}).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumQuantityForEvent returns the total ticket quantity of pending and
// confirmed bookings for an event. excludeID, when non-zero, leaves one
// booking out of the sum (used when re-checking capacity on update).
func (r *BookingRepository) SumQuantityForEvent(ctx context.Context, eventID, excludeID int64) (int, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("event_id = ?", eventID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var total *int
	if err := q.Select("SUM(quantity)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// SumRevenueForEvent sums total_price over every booking of the event,
// regardless of status.
func (r *BookingRepository) SumRevenueForEvent(ctx context.Context, eventID int64) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("event_id = ?", eventID).
		Select("SUM(total_price)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
