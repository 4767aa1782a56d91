package venue

import "errors"

var (
	ErrNotFound   = errors.New("venue not found")
	ErrValidation = errors.New("validation error")
)
