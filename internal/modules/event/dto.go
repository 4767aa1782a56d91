package event

import "time"

type CreateEventRequest struct {
	Name      string    `json:"name" validate:"required,max=200"`
	EventDate time.Time `json:"event_date" validate:"required"`
	VenueID   int64     `json:"venue_id" validate:"required"`
}

type UpdateEventRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=200"`
	EventDate *time.Time `json:"event_date"`
	VenueID   *int64     `json:"venue_id"`
}

type RevenueResponse struct {
	EventID int64   `json:"event_id"`
	Total   float64 `json:"total"`
}
