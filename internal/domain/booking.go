package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Quantity      int           `json:"quantity"`
	TotalPrice    float64       `json:"total_price"`
	BookingDate   time.Time     `json:"booking_date"`
	Status        BookingStatus `json:"status"`
	EventID       int64         `json:"event_id"`
	TicketTypeID  int64         `json:"ticket_type_id"`

	Event      *Event      `json:"event,omitempty"`
	TicketType *TicketType `json:"ticket_type,omitempty"`
}
