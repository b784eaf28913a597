package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/ignite-timer/internal/application"
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

type RenderOptions struct {
	Now      time.Time
	Degraded bool
	BarWidth int
}

// View renders snapshot as plain lipgloss text without a bubbletea program.
func View(snapshot application.Snapshot, opts RenderOptions, s Styles) string {
	lines := []string{
		s.Title.Render("Ignite"),
		s.Header.Render(headerLine(snapshot.Summary)),
	}

	if snapshot.ActiveCycle == nil {
		lines = append(lines, s.Section.Render(idleBlock(snapshot, opts, s)))
	} else {
		lines = append(lines, s.Section.Render(activeBlock(snapshot, opts, s)))
	}

	if opts.Degraded {
		lines = append(lines, s.Section.Render(s.Warning.Render("[unsaved] state is kept in memory only")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(summary domain.CycleSummary) string {
	return fmt.Sprintf("cycles: %d, completed: %d, focused: %d min", summary.Total, summary.Completed, summary.FocusedMinutes)
}

func activeBlock(snapshot application.Snapshot, opts RenderOptions, s Styles) string {
	cycle := snapshot.ActiveCycle
	remaining := snapshot.RemainingSeconds()

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	clockStyle := s.Clock.Foreground(interpolateColor(float64(remaining), 0, float64(cycle.TotalSeconds())))
	countdown := lipgloss.JoinHorizontal(
		lipgloss.Top,
		clockStyle.Render(FormatClock(remaining)),
		" ",
		s.Detail.Render("remaining"),
		" ",
		RenderProgressBar(snapshot.Progress(), width, s),
		" ",
		s.Meta.Render(fmt.Sprintf("%3.0f%%", snapshot.Progress()*100)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.Task.Render(cycle.Task),
		countdown,
		s.Meta.Render(scheduleLine(*cycle, opts.Now)),
	)
}

func idleBlock(snapshot application.Snapshot, opts RenderOptions, s Styles) string {
	parts := []string{s.Empty.Render("No cycle in progress.")}

	if len(snapshot.Cycles) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	last := snapshot.Cycles[len(snapshot.Cycles)-1]
	status := snapshot.StatusOf(last)
	line := fmt.Sprintf("last: %s (%s", last.Task, status.Label())
	if at, ok := last.EndDate(); ok {
		line += " " + formatClockTime(at, opts.Now)
	}
	line += ")"

	parts = append(parts, StatusStyle(status, s).Render(line))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// StatusStyle picks the style used to print a cycle of the given status.
func StatusStyle(status domain.CycleStatus, s Styles) lipgloss.Style {
	switch status {
	case domain.CycleStatusCompleted:
		return s.Completed
	case domain.CycleStatusInterrupted, domain.CycleStatusSuperseded:
		return s.Stopped
	case domain.CycleStatusInProgress:
		return s.Task
	default:
		return s.Detail
	}
}

func scheduleLine(cycle domain.Cycle, now time.Time) string {
	ends := cycle.StartDate.Add(time.Duration(cycle.TotalSeconds()) * time.Second)
	return fmt.Sprintf("started %s, ends %s (%d min)", formatClockTime(cycle.StartDate, now), formatClockTime(ends, now), cycle.MinutesAmount)
}

// FormatClock renders seconds as mm:ss. Negative values render as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func formatClockTime(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}

	local := at.Local()
	if now.IsZero() {
		return local.Format("15:04")
	}

	yearA, monthA, dayA := now.Local().Date()
	yearB, monthB, dayB := local.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return local.Format("15:04")
	}

	return local.Format("15:04 on 02 Jan")
}

// RenderProgressBar fills the bar left to right with the elapsed fraction.
func RenderProgressBar(progress float64, width int, s Styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampFraction(progress)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.BarFill.Render(strings.Repeat("=", filled))
	emptySegment := s.BarEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.BarBracket.Render("["),
		fillSegment,
		emptySegment,
		s.BarBracket.Render("]"),
	)
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp, brighter as
// value approaches min. The last minutes of a cycle are the brightest.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	baseColor := 255.0
	targetColor := 240.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
