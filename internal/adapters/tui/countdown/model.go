package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/ignite-timer/internal/adapters/render/status"
	"github.com/bnema/ignite-timer/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const idleTitle = "ignite"

// Controller is the part of the Session the countdown drives.
type Controller interface {
	Snapshot() application.Snapshot
	InterruptCurrentCycle(ctx context.Context) error
	Degraded() bool
}

type eventMsg struct {
	event application.Event
}

type eventsClosedMsg struct{}

type interruptDoneMsg struct {
	err error
}

type Model struct {
	ctx        context.Context
	controller Controller
	events     <-chan application.Event
	now        func() time.Time

	spinner  spinner.Model
	styles   status.Styles
	snapshot application.Snapshot
	outcome  application.EventType
	err      error
	done     bool
}

func New(ctx context.Context, controller Controller, events <-chan application.Event) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		ctx:        ctx,
		controller: controller,
		events:     events,
		now:        time.Now,
		spinner:    s,
		styles:     status.NewStyles(),
		snapshot:   controller.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.snapshot.ActiveCycle == nil {
		return tea.Quit
	}

	return tea.Batch(m.spinner.Tick, waitForEvent(m.events), tea.SetWindowTitle(WindowTitle(m.snapshot)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case eventMsg:
		m.snapshot = msg.event.Snapshot
		switch msg.event.Type {
		case application.EventCycleFinished, application.EventCycleInterrupted:
			m.outcome = msg.event.Type
			m.done = true
			return m, tea.Sequence(tea.SetWindowTitle(idleTitle), tea.Quit)
		default:
			return m, tea.Batch(waitForEvent(m.events), tea.SetWindowTitle(WindowTitle(m.snapshot)))
		}
	case eventsClosedMsg:
		m.done = true
		return m, tea.Quit
	case interruptDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}
		m.snapshot = m.controller.Snapshot()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		case "i":
			return m, interrupt(m.ctx, m.controller)
		}
	}

	return m, nil
}

func (m Model) View() string {
	opts := status.RenderOptions{Now: m.now(), Degraded: m.controller.Degraded()}
	body := status.View(m.snapshot, opts, m.styles)

	if m.done {
		return lipgloss.JoinVertical(lipgloss.Left, body, m.outcomeLine(), "")
	}

	footer := fmt.Sprintf("%s %s", m.spinner.View(), m.styles.Meta.Render("i interrupt, q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Section.Render(footer), "")
}

func (m Model) outcomeLine() string {
	switch {
	case m.err != nil:
		return m.styles.Warning.Render(fmt.Sprintf("interrupt failed: %v", m.err))
	case m.outcome == application.EventCycleFinished:
		return m.styles.Completed.Render("Cycle complete.")
	case m.outcome == application.EventCycleInterrupted:
		return m.styles.Stopped.Render("Cycle interrupted.")
	default:
		return ""
	}
}

// Outcome reports how the countdown ended. It is empty when the user quit
// while the cycle was still running.
func (m Model) Outcome() application.EventType {
	return m.outcome
}

func (m Model) Err() error {
	return m.err
}

// WindowTitle shows the remaining time of the active cycle.
func WindowTitle(snapshot application.Snapshot) string {
	if snapshot.ActiveCycle == nil {
		return idleTitle
	}

	return fmt.Sprintf("%s %s", status.FormatClock(snapshot.RemainingSeconds()), snapshot.ActiveCycle.Task)
}

func waitForEvent(events <-chan application.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: event}
	}
}

func interrupt(ctx context.Context, controller Controller) tea.Cmd {
	return func() tea.Msg {
		return interruptDoneMsg{err: controller.InterruptCurrentCycle(ctx)}
	}
}

// Run shows the countdown until the active cycle ends or the user quits.
func Run(ctx context.Context, controller Controller, events <-chan application.Event, input io.Reader, output io.Writer) (Model, error) {
	p := tea.NewProgram(
		New(ctx, controller, events),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final countdown model type %T", finalModel)
	}

	return result, result.err
}
