package main

import (
	"context"
	"log"
	"time"

	"ticketbooking/internal/config"
	"ticketbooking/internal/database"
	"ticketbooking/internal/domain"
	"ticketbooking/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	// Clean old data in child-first order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM ticket_types")
	db.Exec("DELETE FROM venues")

	ctx := context.Background()

	venues := repository.NewVenueRepository(db)
	events := repository.NewEventRepository(db)
	ticketTypes := repository.NewTicketTypeRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating venues...")
	msg := domain.Venue{Name: "Madison Square Garden", Capacity: 20000, Address: "4 Pennsylvania Plaza, New York"}
	club := domain.Venue{Name: "The Basement Club", Capacity: 250, Address: "12 Orchard St, New York"}
	for _, v := range []*domain.Venue{&msg, &club} {
		if err := venues.Create(ctx, v); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating events...")
	concert := domain.Event{Name: "Rock Concert", EventDate: time.Now().AddDate(0, 2, 0), VenueID: msg.ID}
	jazzNight := domain.Event{Name: "Jazz Night", EventDate: time.Now().AddDate(0, 0, 14), VenueID: club.ID}
	for _, e := range []*domain.Event{&concert, &jazzNight} {
		if err := events.Create(ctx, e); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating ticket types...")
	vip := domain.TicketType{Name: "VIP", Price: 299.99}
	standard := domain.TicketType{Name: "Standard", Price: 89.50}
	for _, t := range []*domain.TicketType{&vip, &standard} {
		if err := ticketTypes.Create(ctx, t); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating bookings...")
	seedBookings := []domain.Booking{
		{
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Quantity:      2,
			TotalPrice:    599.98,
			BookingDate:   time.Now().UTC(),
			Status:        domain.BookingPending,
			EventID:       concert.ID,
			TicketTypeID:  vip.ID,
		},
		{
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Quantity:      4,
			TotalPrice:    358.00,
			BookingDate:   time.Now().UTC(),
			Status:        domain.BookingConfirmed,
			EventID:       jazzNight.ID,
			TicketTypeID:  standard.ID,
		},
	}
	for i := range seedBookings {
		if err := bookings.Create(ctx, &seedBookings[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
}
