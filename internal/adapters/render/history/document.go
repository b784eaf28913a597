package history

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bnema/ignite-timer/internal/application"
	"github.com/bnema/ignite-timer/internal/domain"
	"gopkg.in/yaml.v3"
)

// Entry is one cycle as exported by the history command.
type Entry struct {
	ID              string     `json:"id" yaml:"id"`
	Task            string     `json:"task" yaml:"task"`
	MinutesAmount   int        `json:"minutesAmount" yaml:"minutes_amount"`
	Status          string     `json:"status" yaml:"status"`
	StartDate       time.Time  `json:"startDate" yaml:"start_date"`
	InterruptedDate *time.Time `json:"interruptedDate,omitempty" yaml:"interrupted_date,omitempty"`
	FinishedDate    *time.Time `json:"finishedDate,omitempty" yaml:"finished_date,omitempty"`
}

type Summary struct {
	Total          int `json:"total" yaml:"total"`
	Completed      int `json:"completed" yaml:"completed"`
	Interrupted    int `json:"interrupted" yaml:"interrupted"`
	InProgress     int `json:"inProgress" yaml:"in_progress"`
	Superseded     int `json:"superseded" yaml:"superseded"`
	FocusedMinutes int `json:"focusedMinutes" yaml:"focused_minutes"`
}

type Document struct {
	ActiveCycleID string  `json:"activeCycleId,omitempty" yaml:"active_cycle_id,omitempty"`
	Cycles        []Entry `json:"cycles" yaml:"cycles"`
	Summary       Summary `json:"summary" yaml:"summary"`
}

// Build lists the cycles of snapshot newest first. Cycles sharing a start
// date keep their reverse insertion order.
func Build(snapshot application.Snapshot) Document {
	entries := make([]Entry, 0, len(snapshot.Cycles))
	for i := len(snapshot.Cycles) - 1; i >= 0; i-- {
		entries = append(entries, newEntry(snapshot.Cycles[i], snapshot.StatusOf(snapshot.Cycles[i])))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate.After(entries[j].StartDate)
	})

	return Document{
		ActiveCycleID: string(snapshot.ActiveCycleID),
		Cycles:        entries,
		Summary:       newSummary(snapshot.Summary),
	}
}

func newEntry(cycle domain.Cycle, status domain.CycleStatus) Entry {
	return Entry{
		ID:              string(cycle.ID),
		Task:            cycle.Task,
		MinutesAmount:   cycle.MinutesAmount,
		Status:          string(status),
		StartDate:       cycle.StartDate.UTC(),
		InterruptedDate: utcPtr(cycle.InterruptedDate),
		FinishedDate:    utcPtr(cycle.FinishedDate),
	}
}

func newSummary(summary domain.CycleSummary) Summary {
	return Summary{
		Total:          summary.Total,
		Completed:      summary.Completed,
		Interrupted:    summary.Interrupted,
		InProgress:     summary.InProgress,
		Superseded:     summary.Superseded,
		FocusedMinutes: summary.FocusedMinutes,
	}
}

func utcPtr(at *time.Time) *time.Time {
	if at == nil {
		return nil
	}

	utc := at.UTC()
	return &utc
}

func WriteYAML(w io.Writer, doc Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode history yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush history yaml: %w", err)
	}

	return nil
}
