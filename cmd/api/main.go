package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketbooking/internal/config"
	"ticketbooking/internal/database"
	"ticketbooking/internal/middleware"
	"ticketbooking/internal/modules/booking"
	"ticketbooking/internal/modules/event"
	"ticketbooking/internal/modules/tickettype"
	"ticketbooking/internal/modules/venue"
	"ticketbooking/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	venueRepo := repository.NewVenueRepository(db)
	eventRepo := repository.NewEventRepository(db)
	ticketTypeRepo := repository.NewTicketTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	venueService := venue.NewService(venueRepo)
	venueHandler := venue.NewHandler(venueService)

	eventService := event.NewService(eventRepo, venueRepo, bookingRepo)
	eventHandler := event.NewHandler(eventService)

	ticketTypeService := tickettype.NewService(ticketTypeRepo)
	ticketTypeHandler := tickettype.NewHandler(ticketTypeService)

	bookingService := booking.NewService(bookingRepo, eventRepo, ticketTypeRepo, booking.Policy{
		EnforceVenueCapacity: cfg.EnforceVenueCapacity,
	})
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/api/v1")
	{
		venueHandler.RegisterRoutes(v1)
		eventHandler.RegisterRoutes(v1)
		ticketTypeHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
