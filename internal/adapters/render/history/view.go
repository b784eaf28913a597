package history

import (
	"fmt"
	"time"

	"github.com/bnema/ignite-timer/internal/adapters/render/status"
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	dateColumnWidth     = 18
	durationColumnWidth = 8
	statusColumnWidth   = 13
)

// View renders doc as an aligned table followed by the summary line.
func View(doc Document, now time.Time) string {
	s := status.NewStyles()
	lines := []string{s.Title.Render("Cycle history")}

	if len(doc.Cycles) == 0 {
		lines = append(lines, s.Empty.Render("No cycles yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, row(s.Header, s.Header, "STARTED", "MINUTES", "STATUS", "TASK"))
	for _, entry := range doc.Cycles {
		statusStyle := status.StatusStyle(domain.CycleStatus(entry.Status), s)
		label := domain.CycleStatus(entry.Status).Label()
		lines = append(lines, row(s.Detail, statusStyle, formatStarted(entry.StartDate, now), fmt.Sprintf("%d", entry.MinutesAmount), label, entry.Task))
	}

	summary := doc.Summary
	lines = append(lines, s.Section.Render(s.Meta.Render(fmt.Sprintf(
		"%d cycles: %d completed, %d interrupted, %d in progress, %d superseded; %d focused minutes",
		summary.Total, summary.Completed, summary.Interrupted, summary.InProgress, summary.Superseded, summary.FocusedMinutes,
	))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func row(base, statusStyle lipgloss.Style, started, minutes, label, task string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		base.Width(dateColumnWidth).Render(started),
		base.Width(durationColumnWidth).Render(minutes),
		statusStyle.Width(statusColumnWidth).Render(label),
		base.Render(task),
	)
}

func formatStarted(at, now time.Time) string {
	local := at.Local()
	if !now.IsZero() {
		yearA, monthA, dayA := now.Local().Date()
		yearB, monthB, dayB := local.Date()
		if yearA == yearB && monthA == monthB && dayA == dayB {
			return "today " + local.Format("15:04")
		}
	}

	return local.Format("02 Jan 2006 15:04")
}

func Render(doc Document, now time.Time) (string, error) {
	return status.Headless(func() string {
		return View(doc, now)
	})
}
