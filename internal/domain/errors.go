package domain

import "errors"

var (
	ErrTaskRequired       = errors.New("task is required")
	ErrMinutesOutOfRange  = errors.New("minutes amount out of range")
	ErrMinutesNotStep     = errors.New("minutes amount must be a multiple of 5")
	ErrCycleAlreadyActive = errors.New("a cycle is already active")
	ErrSlotNotFound       = errors.New("slot not found")
	ErrMalformedState     = errors.New("malformed cycles state")
)
