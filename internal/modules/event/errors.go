package event

import "errors"

var (
	ErrNotFound      = errors.New("event not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrValidation    = errors.New("validation error")
)
