package domain

import "errors"

var (
	// ErrNotFound reports a valid upstream response that matched nothing.
	ErrNotFound = errors.New("not found")

	ErrInvalidTravelMode = errors.New("invalid travel mode")
)
