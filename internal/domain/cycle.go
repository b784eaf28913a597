package domain

import "time"

type CycleID string

type CycleStatus string

const (
	CycleStatusInProgress  CycleStatus = "in_progress"
	CycleStatusCompleted   CycleStatus = "completed"
	CycleStatusInterrupted CycleStatus = "interrupted"
	CycleStatusSuperseded  CycleStatus = "superseded"
)

func (s CycleStatus) Label() string {
	switch s {
	case CycleStatusInProgress:
		return "in progress"
	case CycleStatusCompleted:
		return "completed"
	case CycleStatusInterrupted:
		return "interrupted"
	case CycleStatusSuperseded:
		return "superseded"
	default:
		return string(s)
	}
}

type Cycle struct {
	ID              CycleID
	Task            string
	MinutesAmount   int
	StartDate       time.Time
	InterruptedDate *time.Time
	FinishedDate    *time.Time
}

// TotalSeconds is the target duration of the cycle in seconds.
func (c Cycle) TotalSeconds() int {
	return c.MinutesAmount * 60
}

func (c Cycle) Ended() bool {
	return c.InterruptedDate != nil || c.FinishedDate != nil
}

// EndDate returns whichever terminal timestamp is set.
func (c Cycle) EndDate() (time.Time, bool) {
	switch {
	case c.FinishedDate != nil:
		return *c.FinishedDate, true
	case c.InterruptedDate != nil:
		return *c.InterruptedDate, true
	default:
		return time.Time{}, false
	}
}

func (c Cycle) clone() Cycle {
	cloned := c
	if c.InterruptedDate != nil {
		at := *c.InterruptedDate
		cloned.InterruptedDate = &at
	}
	if c.FinishedDate != nil {
		at := *c.FinishedDate
		cloned.FinishedDate = &at
	}
	return cloned
}

// SecondsBetween returns the whole seconds from start to now, truncated
// toward zero and never negative.
func SecondsBetween(start, now time.Time) int {
	if start.IsZero() || now.Before(start) {
		return 0
	}

	return int(now.Sub(start) / time.Second)
}
