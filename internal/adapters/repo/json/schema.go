package json

import "time"

// stateSchema mirrors the persisted layout
// {"cycles": Cycle[], "activeCycleId": string | null}.
type stateSchema struct {
	Cycles        []cycleSchema `json:"cycles"`
	ActiveCycleID *string       `json:"activeCycleId"`
}

type cycleSchema struct {
	ID              string     `json:"id"`
	Task            string     `json:"task"`
	MinutesAmount   int        `json:"minutesAmount"`
	StartDate       time.Time  `json:"startDate"`
	InterruptedDate *time.Time `json:"interruptedDate,omitempty"`
	FinishedDate    *time.Time `json:"finishedDate,omitempty"`
}
