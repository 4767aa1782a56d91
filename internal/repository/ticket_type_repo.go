package repository

import (
	"context"

	"ticketbooking/internal/domain"

	"gorm.io/gorm"
)

type TicketTypeRepository struct {
	db *gorm.DB
}

func NewTicketTypeRepository(db *gorm.DB) *TicketTypeRepository {
	return &TicketTypeRepository{db: db}
}

func toDomainTicketType(m ticketTypeModel) *domain.TicketType {
	t := &domain.TicketType{
		ID:    m.ID,
		Name:  m.Name,
		Price: m.Price,
	}
	for _, b := range m.Bookings {
		t.Bookings = append(t.Bookings, *toDomainBooking(b))
	}
	return t
}

func toTicketTypeModel(t *domain.TicketType) ticketTypeModel {
	return ticketTypeModel{
		ID:    t.ID,
		Name:  t.Name,
		Price: t.Price,
	}
}

func (r *TicketTypeRepository) Create(ctx context.Context, t *domain.TicketType) error {
	m := toTicketTypeModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*t = *toDomainTicketType(m)
	return nil
}

func (r *TicketTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TicketType, error) {
	var m ticketTypeModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainTicketType(m), nil
}

func (r *TicketTypeRepository) GetByName(ctx context.Context, name string) (*domain.TicketType, error) {
	var m ticketTypeModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainTicketType(m), nil
}

func (r *TicketTypeRepository) GetWithBookings(ctx context.Context, id int64) (*domain.TicketType, error) {
	var m ticketTypeModel
	err := r.db.WithContext(ctx).
		Preload("Bookings").
		First(&m, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainTicketType(m), nil
}

func (r *TicketTypeRepository) List(ctx context.Context, skip, limit int) ([]domain.TicketType, error) {
	var rows []ticketTypeModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.TicketType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTicketType(m))
	}
	return out, nil
}

func (r *TicketTypeRepository) Update(ctx context.Context, t *domain.TicketType) error {
	m := toTicketTypeModel(t)
	res := r.db.WithContext(ctx).Model(&ticketTypeModel{ID: t.ID}).Updates(map[string]any{
		"name":  m.Name,
		"price": m.Price,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TicketTypeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ticketTypeModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
