package repository

import (
	"context"

	"ticketbooking/internal/domain"

	"gorm.io/gorm"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func toDomainVenue(m venueModel) *domain.Venue {
	v := &domain.Venue{
		ID:       m.ID,
		Name:     m.Name,
		Capacity: m.Capacity,
		Address:  m.Address,
	}
	for _, e := range m.Events {
		v.Events = append(v.Events, *toDomainEvent(e))
	}
	return v
}

func toVenueModel(v *domain.Venue) venueModel {
	return venueModel{
		ID:       v.ID,
		Name:     v.Name,
		Capacity: v.Capacity,
		Address:  v.Address,
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	m := toVenueModel(v)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*v = *toDomainVenue(m)
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var m venueModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainVenue(m), nil
}

func (r *VenueRepository) GetWithEvents(ctx context.Context, id int64) (*domain.Venue, error) {
	var m venueModel
	err := r.db.WithContext(ctx).
		Preload("Events").
		First(&m, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainVenue(m), nil
}

func (r *VenueRepository) List(ctx context.Context, skip, limit int) ([]domain.Venue, error) {
	var rows []venueModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Venue, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVenue(m))
	}
	return out, nil
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	m := toVenueModel(v)
	res := r.db.WithContext(ctx).Model(&venueModel{ID: v.ID}).Updates(map[string]any{
		"name":     m.Name,
		"capacity": m.Capacity,
		"address":  m.Address,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&venueModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
