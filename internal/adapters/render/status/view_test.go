package status

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/ignite-timer/internal/application"
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSnapshot(start time.Time, elapsed int) application.Snapshot {
	cycle := domain.Cycle{ID: "c-1", Task: "Write report", MinutesAmount: 25, StartDate: start}
	return application.Snapshot{
		Cycles:              []domain.Cycle{cycle},
		ActiveCycleID:       cycle.ID,
		ActiveCycle:         &cycle,
		AmountSecondsPassed: elapsed,
		Summary:             domain.CycleSummary{Total: 1, InProgress: 1},
	}
}

func TestRenderActiveCycle(t *testing.T) {
	start := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	output, err := Render(activeSnapshot(start, 750), RenderOptions{Now: start.Add(750 * time.Second)})

	require.NoError(t, err)
	assert.Contains(t, output, "Ignite")
	assert.Contains(t, output, "cycles: 1, completed: 0, focused: 0 min")
	assert.Contains(t, output, "Write report")
	assert.Contains(t, output, "12:30 remaining")
	assert.Contains(t, output, "50%")
	assert.Contains(t, output, "(25 min)")
	assert.Contains(t, output, "["+strings.Repeat("=", 12))
	assert.NotContains(t, output, "No cycle in progress.")
	assert.NotContains(t, output, "[unsaved]")
}

func TestRenderIdleWithoutCycles(t *testing.T) {
	output, err := Render(application.Snapshot{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "cycles: 0")
	assert.Contains(t, output, "No cycle in progress.")
	assert.NotContains(t, output, "last:")
}

func TestRenderIdleShowsLastCycle(t *testing.T) {
	start := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	finished := start.Add(25 * time.Minute)
	interrupted := start.Add(40 * time.Minute)
	snapshot := application.Snapshot{
		Cycles: []domain.Cycle{
			{ID: "c-1", Task: "Write report", MinutesAmount: 25, StartDate: start, FinishedDate: &finished},
			{ID: "c-2", Task: "Review", MinutesAmount: 10, StartDate: start.Add(30 * time.Minute), InterruptedDate: &interrupted},
		},
		Summary: domain.CycleSummary{Total: 2, Completed: 1, Interrupted: 1, FocusedMinutes: 25},
	}

	output, err := Render(snapshot, RenderOptions{Now: interrupted})

	require.NoError(t, err)
	assert.Contains(t, output, "cycles: 2, completed: 1, focused: 25 min")
	assert.Contains(t, output, "last: Review (interrupted")
}

func TestRenderDegradedWarning(t *testing.T) {
	output, err := Render(application.Snapshot{}, RenderOptions{Degraded: true})

	require.NoError(t, err)
	assert.Contains(t, output, "[unsaved] state is kept in memory only")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "01:05", FormatClock(65))
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "60:00", FormatClock(3600))
}

func TestRenderProgressBarBounds(t *testing.T) {
	s := NewStyles()

	assert.Equal(t, "", RenderProgressBar(0.5, 0, s))
	assert.Contains(t, RenderProgressBar(-1, 4, s), "----")
	assert.Contains(t, RenderProgressBar(2, 4, s), "====")
}

func TestStatusStyleMatchesStatus(t *testing.T) {
	s := NewStyles()

	assert.Equal(t, s.Completed.GetForeground(), StatusStyle(domain.CycleStatusCompleted, s).GetForeground())
	assert.Equal(t, s.Stopped.GetForeground(), StatusStyle(domain.CycleStatusInterrupted, s).GetForeground())
	assert.Equal(t, s.Stopped.GetForeground(), StatusStyle(domain.CycleStatusSuperseded, s).GetForeground())
	assert.Equal(t, s.Task.GetForeground(), StatusStyle(domain.CycleStatusInProgress, s).GetForeground())
}

func TestHeadlessReturnsDrawnFrame(t *testing.T) {
	output, err := Headless(func() string { return "frame" })

	require.NoError(t, err)
	assert.Equal(t, "frame", output)
}
