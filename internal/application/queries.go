package application

import "github.com/bnema/ignite-timer/internal/domain"

// Snapshot is a consistent read of the Session at one point in time.
type Snapshot struct {
	Cycles              []domain.Cycle
	ActiveCycleID       domain.CycleID
	ActiveCycle         *domain.Cycle
	AmountSecondsPassed int
	Summary             domain.CycleSummary
}

func newSnapshot(state domain.CyclesState, secondsPassed int) Snapshot {
	cloned := state.Clone()
	snapshot := Snapshot{
		Cycles:              cloned.Cycles,
		ActiveCycleID:       cloned.ActiveCycleID,
		AmountSecondsPassed: secondsPassed,
		Summary:             domain.Summarize(cloned),
	}
	if active, ok := cloned.ActiveCycle(); ok {
		snapshot.ActiveCycle = &active
	}

	return snapshot
}

func (s Snapshot) TotalSeconds() int {
	if s.ActiveCycle == nil {
		return 0
	}

	return s.ActiveCycle.TotalSeconds()
}

// RemainingSeconds never goes below zero.
func (s Snapshot) RemainingSeconds() int {
	if s.ActiveCycle == nil {
		return 0
	}

	remaining := s.TotalSeconds() - s.AmountSecondsPassed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress is the elapsed fraction of the active cycle in [0, 1].
func (s Snapshot) Progress() float64 {
	total := s.TotalSeconds()
	if total <= 0 {
		return 0
	}

	progress := float64(s.AmountSecondsPassed) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// StatusOf reports the lifecycle status of cycle within this snapshot.
func (s Snapshot) StatusOf(cycle domain.Cycle) domain.CycleStatus {
	return domain.CyclesState{Cycles: s.Cycles, ActiveCycleID: s.ActiveCycleID}.StatusOf(cycle)
}
