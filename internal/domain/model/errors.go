package model

import "errors"

// Sentinel kinds for model validation.
var (
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidMatch    = errors.New("invalid match")
	ErrUnknownPosition = errors.New("unknown position")
)
