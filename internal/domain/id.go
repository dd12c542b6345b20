package domain

import "errors"

// ErrInvalidID is returned when a path parameter is not a numeric id.
var ErrInvalidID = errors.New("invalid id")
