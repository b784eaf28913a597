package domain

import (
	"fmt"
	"strings"
)

const (
	MinCycleMinutes  = 5
	MaxCycleMinutes  = 60
	CycleMinutesStep = 5
)

// NewCycleInput is what a user submits to start a cycle. Validation lives
// here rather than in Reduce: the reducer trusts its caller.
type NewCycleInput struct {
	Task          string
	MinutesAmount int
}

func (in NewCycleInput) Validate() error {
	if strings.TrimSpace(in.Task) == "" {
		return ErrTaskRequired
	}
	if in.MinutesAmount < MinCycleMinutes || in.MinutesAmount > MaxCycleMinutes {
		return fmt.Errorf("%w: got %d, want %d-%d", ErrMinutesOutOfRange, in.MinutesAmount, MinCycleMinutes, MaxCycleMinutes)
	}
	if in.MinutesAmount%CycleMinutesStep != 0 {
		return fmt.Errorf("%w: got %d", ErrMinutesNotStep, in.MinutesAmount)
	}

	return nil
}
