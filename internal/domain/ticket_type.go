package domain

type TicketType struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	Bookings []Booking `json:"bookings,omitempty"`
}

// TicketTypeStats aggregates booking numbers for one ticket type.
type TicketTypeStats struct {
	TicketTypeID             int64   `json:"ticket_type_id"`
	TicketTypeName           string  `json:"ticket_type_name"`
	Price                    float64 `json:"price"`
	TotalBookings            int     `json:"total_bookings"`
	ConfirmedBookings        int     `json:"confirmed_bookings"`
	TotalTicketsSold         int     `json:"total_tickets_sold"`
	TotalRevenue             float64 `json:"total_revenue"`
	AverageTicketsPerBooking float64 `json:"average_tickets_per_booking"`
}
