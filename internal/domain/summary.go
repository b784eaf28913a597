package domain

// CycleSummary aggregates a history of cycles by status.
type CycleSummary struct {
	Total          int
	Completed      int
	Interrupted    int
	InProgress     int
	Superseded     int
	FocusedMinutes int
}

func Summarize(state CyclesState) CycleSummary {
	summary := CycleSummary{Total: len(state.Cycles)}
	for _, cycle := range state.Cycles {
		switch state.StatusOf(cycle) {
		case CycleStatusCompleted:
			summary.Completed++
			summary.FocusedMinutes += cycle.MinutesAmount
		case CycleStatusInterrupted:
			summary.Interrupted++
		case CycleStatusInProgress:
			summary.InProgress++
		case CycleStatusSuperseded:
			summary.Superseded++
		}
	}

	return summary
}
