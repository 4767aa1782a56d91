package domain

import "time"

type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
	VenueID   int64     `json:"venue_id"`

	Venue    *Venue    `json:"venue,omitempty"`
	Bookings []Booking `json:"bookings,omitempty"`
}

// EventStats aggregates booking numbers for one event.
type EventStats struct {
	EventID             int64   `json:"event_id"`
	EventName           string  `json:"event_name"`
	TotalBookings       int     `json:"total_bookings"`
	ConfirmedBookings   int     `json:"confirmed_bookings"`
	TotalTicketsSold    int     `json:"total_tickets_sold"`
	TotalRevenue        float64 `json:"total_revenue"`
	VenueCapacity       int     `json:"venue_capacity"`
	CapacityUtilization float64 `json:"capacity_utilization"`
}
