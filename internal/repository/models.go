package repository

import (
	"time"

	"gorm.io/gorm"
)

// Row models are kept separate from domain types so the gorm schema
// (column names, foreign keys, cascade rules) stays out of the domain.

type venueModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Capacity int    `gorm:"column:capacity;not null"`
	Address  string `gorm:"column:address;not null"`

	Events []eventModel `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (venueModel) TableName() string { return "venues" }

type eventModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	EventDate time.Time `gorm:"column:event_date;not null"`
	VenueID   int64     `gorm:"column:venue_id;not null"`

	Venue    *venueModel    `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Bookings []bookingModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (eventModel) TableName() string { return "events" }

type ticketTypeModel struct {
	ID    int64   `gorm:"column:id;primaryKey"`
	Name  string  `gorm:"column:name;not null;uniqueIndex"`
	Price float64 `gorm:"column:price;not null"`

	Bookings []bookingModel `gorm:"foreignKey:TicketTypeID;constraint:OnDelete:CASCADE"`
}

func (ticketTypeModel) TableName() string { return "ticket_types" }

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CustomerName  string    `gorm:"column:customer_name;not null"`
	CustomerEmail string    `gorm:"column:customer_email;not null;index"`
	Quantity      int       `gorm:"column:quantity;not null;default:1"`
	TotalPrice    float64   `gorm:"column:total_price;not null"`
	BookingDate   time.Time `gorm:"column:booking_date"`
	Status        string    `gorm:"column:status;default:pending;index"`
	EventID       int64     `gorm:"column:event_id;not null;index"`
	TicketTypeID  int64     `gorm:"column:ticket_type_id;not null"`

	Event      *eventModel      `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	TicketType *ticketTypeModel `gorm:"foreignKey:TicketTypeID;constraint:OnDelete:CASCADE"`
}

func (bookingModel) TableName() string { return "bookings" }

// Migrate creates or updates the four tables, including the cascade
// foreign keys Event→Venue, Booking→Event and Booking→TicketType.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venueModel{},
		&eventModel{},
		&ticketTypeModel{},
		&bookingModel{},
	)
}
