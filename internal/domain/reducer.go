package domain

import "time"

// Reduce returns the state that follows state once action is applied. It
// never mutates its input; when an action has no effect the input is
// returned as is.
func Reduce(state CyclesState, action Action) CyclesState {
	switch a := action.(type) {
	case AddNewCycleAction:
		next := state.Clone()
		next.Cycles = append(next.Cycles, a.Cycle.clone())
		next.ActiveCycleID = a.Cycle.ID
		return next
	case InterruptCurrentCycleAction:
		return endActiveCycle(state, func(cycle *Cycle) {
			cycle.InterruptedDate = timePtr(a.At)
		})
	case MarkCurrentCycleAsFinishedAction:
		return endActiveCycle(state, func(cycle *Cycle) {
			cycle.FinishedDate = timePtr(a.At)
		})
	default:
		return state
	}
}

func endActiveCycle(state CyclesState, stamp func(*Cycle)) CyclesState {
	index := state.activeIndex()
	if index < 0 {
		return state
	}

	next := state.Clone()
	stamp(&next.Cycles[index])
	next.ActiveCycleID = ""
	return next
}

func timePtr(t time.Time) *time.Time {
	return &t
}
