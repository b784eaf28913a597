package domain

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceAddNewCycleFromEmptyState(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	cycle := Cycle{ID: "c-1", Task: "Write report", MinutesAmount: 25, StartDate: start}

	next := Reduce(EmptyState(), AddNewCycleAction{Cycle: cycle})

	require.Len(t, next.Cycles, 1)
	assert.Equal(t, "Write report", next.Cycles[0].Task)
	assert.Equal(t, 25, next.Cycles[0].MinutesAmount)
	assert.Nil(t, next.Cycles[0].InterruptedDate)
	assert.Nil(t, next.Cycles[0].FinishedDate)
	assert.Equal(t, CycleID("c-1"), next.ActiveCycleID)
}

func TestReduceInterruptStampsActiveCycleAndClearsActiveID(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := Reduce(EmptyState(), AddNewCycleAction{Cycle: Cycle{ID: "c-1", Task: "Write report", MinutesAmount: 25, StartDate: start}})

	at := start.Add(3 * time.Minute)
	next := Reduce(state, InterruptCurrentCycleAction{At: at})

	require.Len(t, next.Cycles, 1)
	require.NotNil(t, next.Cycles[0].InterruptedDate)
	assert.Equal(t, at, *next.Cycles[0].InterruptedDate)
	assert.Nil(t, next.Cycles[0].FinishedDate)
	assert.Equal(t, CycleID(""), next.ActiveCycleID)
}

func TestReduceFinishAfterFullDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := Reduce(EmptyState(), AddNewCycleAction{Cycle: Cycle{ID: "c-1", Task: "Deep work", MinutesAmount: 25, StartDate: start}})

	at := start.Add(1500 * time.Second)
	next := Reduce(state, MarkCurrentCycleAsFinishedAction{At: at})

	require.NotNil(t, next.Cycles[0].FinishedDate)
	assert.Equal(t, at, *next.Cycles[0].FinishedDate)
	assert.Nil(t, next.Cycles[0].InterruptedDate)
	assert.Equal(t, CycleID(""), next.ActiveCycleID)
	assert.Equal(t, 1500, SecondsBetween(start, at))
}

func TestReduceEndActionsWithoutActiveCycleAreNoOps(t *testing.T) {
	t.Parallel()

	finished := time.Date(2026, 3, 2, 9, 25, 0, 0, time.UTC)
	state := CyclesState{
		Cycles: []Cycle{{ID: "c-1", Task: "done", MinutesAmount: 25, StartDate: finished.Add(-25 * time.Minute), FinishedDate: &finished}},
	}

	tests := []struct {
		name   string
		action Action
	}{
		{name: "interrupt", action: InterruptCurrentCycleAction{At: finished.Add(time.Hour)}},
		{name: "finish", action: MarkCurrentCycleAsFinishedAction{At: finished.Add(time.Hour)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next := Reduce(state, tc.action)
			assert.Equal(t, state, next)
		})
	}
}

func TestReduceEndActionsWithDanglingActiveIDAreNoOps(t *testing.T) {
	t.Parallel()

	state := CyclesState{Cycles: []Cycle{}, ActiveCycleID: "missing"}

	assert.Equal(t, state, Reduce(state, InterruptCurrentCycleAction{At: time.Now()}))
	assert.Equal(t, state, Reduce(state, MarkCurrentCycleAsFinishedAction{At: time.Now()}))
}

func TestReduceCreateWhileActiveSupersedesPreviousCycle(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := Reduce(EmptyState(), AddNewCycleAction{Cycle: Cycle{ID: "c-1", Task: "first", MinutesAmount: 25, StartDate: start}})
	next := Reduce(state, AddNewCycleAction{Cycle: Cycle{ID: "c-2", Task: "second", MinutesAmount: 30, StartDate: start.Add(time.Minute)}})

	require.Len(t, next.Cycles, 2)
	assert.Equal(t, CycleID("c-2"), next.ActiveCycleID)
	assert.Equal(t, CycleStatusSuperseded, next.StatusOf(next.Cycles[0]))
	assert.Equal(t, CycleStatusInProgress, next.StatusOf(next.Cycles[1]))
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	state := Reduce(EmptyState(), AddNewCycleAction{Cycle: Cycle{ID: "c-1", Task: "first", MinutesAmount: 25, StartDate: start}})
	before := state.Clone()

	_ = Reduce(state, InterruptCurrentCycleAction{At: start.Add(time.Minute)})
	_ = Reduce(state, AddNewCycleAction{Cycle: Cycle{ID: "c-2", Task: "second", MinutesAmount: 5, StartDate: start}})

	assert.Equal(t, before, state)
}

func TestReduceUnknownActionReturnsStateUnchanged(t *testing.T) {
	t.Parallel()

	state := CyclesState{Cycles: []Cycle{{ID: "c-1"}}, ActiveCycleID: "c-1"}
	assert.Equal(t, state, Reduce(state, nil))
}

func TestReduceRandomSequencesKeepSingleRunningCycle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for run := 0; run < 50; run++ {
		state := EmptyState()
		now := start

		for step := 0; step < 40; step++ {
			now = now.Add(time.Duration(rng.Intn(600)) * time.Second)
			before := len(state.Cycles)

			switch rng.Intn(3) {
			case 0:
				id := CycleID(fmt.Sprintf("c-%d-%d", run, step))
				state = Reduce(state, AddNewCycleAction{Cycle: Cycle{ID: id, Task: "task", MinutesAmount: 5 * (1 + rng.Intn(12)), StartDate: now}})
				require.Len(t, state.Cycles, before+1)
				require.Equal(t, id, state.ActiveCycleID)
			case 1:
				state = Reduce(state, InterruptCurrentCycleAction{At: now})
				require.Len(t, state.Cycles, before)
			case 2:
				state = Reduce(state, MarkCurrentCycleAsFinishedAction{At: now})
				require.Len(t, state.Cycles, before)
			}

			running := 0
			for _, cycle := range state.Cycles {
				require.False(t, cycle.InterruptedDate != nil && cycle.FinishedDate != nil, "cycle %s has both end dates", cycle.ID)
				if !cycle.Ended() && cycle.ID == state.ActiveCycleID {
					running++
				}
			}
			require.LessOrEqual(t, running, 1)

			if active, ok := state.ActiveCycle(); ok {
				require.False(t, active.Ended())
			}
		}
	}
}
