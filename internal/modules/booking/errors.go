package booking

import "errors"

var (
	ErrNotFound           = errors.New("booking not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrValidation         = errors.New("validation error")
	ErrCapacityExceeded   = errors.New("venue capacity exceeded")
)
