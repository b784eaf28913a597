package domain

type CyclesState struct {
	Cycles        []Cycle
	ActiveCycleID CycleID
}

func EmptyState() CyclesState {
	return CyclesState{Cycles: []Cycle{}}
}

func (s CyclesState) HasActiveCycle() bool {
	_, ok := s.ActiveCycle()
	return ok
}

// ActiveCycle resolves ActiveCycleID against Cycles. The returned cycle is a
// copy; mutating it does not affect the state.
func (s CyclesState) ActiveCycle() (Cycle, bool) {
	index := s.activeIndex()
	if index < 0 {
		return Cycle{}, false
	}

	return s.Cycles[index].clone(), true
}

func (s CyclesState) StatusOf(cycle Cycle) CycleStatus {
	switch {
	case cycle.FinishedDate != nil:
		return CycleStatusCompleted
	case cycle.InterruptedDate != nil:
		return CycleStatusInterrupted
	case s.ActiveCycleID != "" && cycle.ID == s.ActiveCycleID:
		return CycleStatusInProgress
	default:
		return CycleStatusSuperseded
	}
}

// Clone returns a deep copy so the caller can hand it out without sharing
// the backing array.
func (s CyclesState) Clone() CyclesState {
	cycles := make([]Cycle, 0, len(s.Cycles))
	for _, cycle := range s.Cycles {
		cycles = append(cycles, cycle.clone())
	}

	return CyclesState{Cycles: cycles, ActiveCycleID: s.ActiveCycleID}
}

func (s CyclesState) activeIndex() int {
	if s.ActiveCycleID == "" {
		return -1
	}

	for i, cycle := range s.Cycles {
		if cycle.ID == s.ActiveCycleID {
			return i
		}
	}

	return -1
}
