package booking

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Quantity      int    `json:"quantity"`
	EventID       int64  `json:"event_id" validate:"required"`
	TicketTypeID  int64  `json:"ticket_type_id" validate:"required"`
}

// UpdateBookingRequest carries a partial update; nil fields are left
// untouched. total_price is never client-settable.
type UpdateBookingRequest struct {
	CustomerName  *string `json:"customer_name" validate:"omitempty,max=100"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
	Quantity      *int    `json:"quantity"`
	EventID       *int64  `json:"event_id"`
	TicketTypeID  *int64  `json:"ticket_type_id"`
	Status        *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CustomerBookingsResponse struct {
	CustomerEmail string `json:"customer_email"`
	TotalBookings int    `json:"total_bookings"`
	Bookings      any    `json:"bookings"`
}
