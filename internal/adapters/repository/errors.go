package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrDuplicateID    = errors.New("duplicate id")
)
