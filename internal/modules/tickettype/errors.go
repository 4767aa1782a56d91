package tickettype

import "errors"

var (
	ErrNotFound      = errors.New("ticket type not found")
	ErrDuplicateName = errors.New("ticket type name already exists")
	ErrValidation    = errors.New("validation error")
)
