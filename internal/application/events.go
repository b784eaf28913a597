package application

import (
	"time"

	"github.com/bnema/ignite-timer/internal/domain"
)

type EventType string

const (
	EventTick             EventType = "tick"
	EventCycleCreated     EventType = "cycle_created"
	EventCycleInterrupted EventType = "cycle_interrupted"
	EventCycleFinished    EventType = "cycle_finished"
)

// Event is published to subscribers after the Session's state changed.
type Event struct {
	Type     EventType
	CycleID  domain.CycleID
	Seconds  int
	At       time.Time
	Snapshot Snapshot
}
